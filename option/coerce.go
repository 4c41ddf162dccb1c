package option

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

var integer = regexp.MustCompile(`^-?\d+$`)

// Coerce converts a single token from a message into a value for the option.
// The dynamic type of the result is string for Text and mention options,
// int64 for Number options, and bool for Boolean options. Mentions yield the
// mentioned id. If the token is not a valid value for the option, the result
// is nil, false.
func (o *Option) Coerce(tok string) (any, bool) {
	switch o.kind {
	case Text:
		return o.text(tok)
	case Number:
		return o.number(tok)
	case Boolean:
		switch tok {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	case UserMention, ChannelMention, RoleMention, GenericMention:
		m := mentions[o.kind].FindStringSubmatch(tok)
		if m == nil {
			return nil, false
		}
		return m[1], true
	}
	return nil, false
}

func (o *Option) text(tok string) (any, bool) {
	s, quoted := unquote(tok)
	if len(o.choices) > 0 {
		for _, c := range o.choices {
			if tok == c.Value || quoted && s == c.Value {
				return c.Value, true
			}
		}
		return nil, false
	}
	if !quoted {
		return nil, false
	}
	if !o.bounded() {
		if s == "" {
			return nil, false
		}
		return s, true
	}
	n := int64(utf8.RuneCountInString(s))
	lo, hi := o.lengthRange()
	if n < lo || hi >= 0 && n > hi {
		return nil, false
	}
	return s, true
}

// unquote removes a surrounding pair of double quotes.
func unquote(tok string) (string, bool) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return "", false
	}
	return tok[1 : len(tok)-1], true
}

func (o *Option) number(tok string) (any, bool) {
	if !integer.MatchString(tok) {
		return nil, false
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return nil, false
	}
	switch {
	case len(o.choices) > 0:
		v := strconv.FormatInt(n, 10)
		for _, c := range o.choices {
			if c.Value == v {
				return n, true
			}
		}
		return nil, false
	case o.bounded():
		lo, hi := o.numberRange()
		if n < lo || n > hi {
			return nil, false
		}
		return n, true
	default:
		if tok[0] == '-' {
			return nil, false
		}
		return n, true
	}
}
