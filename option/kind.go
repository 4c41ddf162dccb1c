package option

import (
	"fmt"
	"strings"
)

// Kind is the kind of value an option accepts.
type Kind int

const (
	// Text is a double-quoted string.
	Text Kind = iota + 1
	// Number is a base-10 integer.
	Number
	// Boolean is exactly true or false.
	Boolean
	// UserMention is a mention of a guild member, <@id> or <@!id>.
	UserMention
	// ChannelMention is a mention of a channel, <#id>.
	ChannelMention
	// RoleMention is a mention of a role, <@&id>.
	RoleMention
	// GenericMention is any of a user, channel, or role mention.
	GenericMention
)

var kindNames = [...]string{
	Text:           "text",
	Number:         "number",
	Boolean:        "true/false",
	UserMention:    "user",
	ChannelMention: "channel",
	RoleMention:    "role",
	GenericMention: "mention",
}

// String returns the user-facing name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) valid() bool {
	return k >= Text && k <= GenericMention
}

// choiceable reports whether options of the kind may have choices or bounds.
func (k Kind) choiceable() bool {
	return k == Text || k == Number
}

// ParseKind parses the name of a kind. It accepts the names returned by
// [Kind.String] as well as a few common synonyms, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "string":
		return Text, nil
	case "number", "int", "integer":
		return Number, nil
	case "true/false", "boolean", "bool":
		return Boolean, nil
	case "user", "member":
		return UserMention, nil
	case "channel":
		return ChannelMention, nil
	case "role":
		return RoleMention, nil
	case "mention", "mentionable":
		return GenericMention, nil
	default:
		return 0, fmt.Errorf("unknown option kind %q", s)
	}
}
