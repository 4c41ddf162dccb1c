package message

import (
	"strings"
	"unicode"
)

// Parsed is a message split into tokens.
type Parsed struct {
	// Args is every whitespace-separated token of the message, including
	// the command token.
	Args []string
	// Name is the first token with the prefix removed.
	Name string
	// Prefixed reports whether the first token began with the prefix.
	Prefixed bool
}

// Parse splits text into tokens and identifies the command named by its
// first token. If the first token does not begin with prefix, Name is the
// whole token and Prefixed is false.
func Parse(text, prefix string) Parsed {
	args := fields(text)
	name, ok := strings.CutPrefix(args[0], prefix)
	return Parsed{Args: args, Name: name, Prefixed: ok}
}

// Split splits text into tokens without looking for a command name.
func Split(text string) Parsed {
	return Parsed{Args: fields(text)}
}

func fields(text string) []string {
	r := strings.FieldsFunc(text, unicode.IsSpace)
	if len(r) == 0 {
		return []string{""}
	}
	return r
}
