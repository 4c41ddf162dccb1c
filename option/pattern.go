package option

import (
	"regexp"
	"strconv"
	"strings"
)

// Mention wrappers. Each has exactly one capturing group holding the id.
const (
	userMention    = `<@!?(\d{17,19})>`
	channelMention = `<#(\d{17,19})>`
	roleMention    = `<@&(\d{17,19})>`
	anyMention     = `<(?:@!?|#|@&)(\d{17,19})>`
)

var defaultPatterns = [...]string{
	Text:           `"(.+)"`,
	Number:         `(\d+)`,
	Boolean:        `(true|false)`,
	UserMention:    userMention,
	ChannelMention: channelMention,
	RoleMention:    roleMention,
	GenericMention: anyMention,
}

var mentions = [...]*regexp.Regexp{
	UserMention:    regexp.MustCompile(`^` + userMention + `$`),
	ChannelMention: regexp.MustCompile(`^` + channelMention + `$`),
	RoleMention:    regexp.MustCompile(`^` + roleMention + `$`),
	GenericMention: regexp.MustCompile(`^` + anyMention + `$`),
}

// Pattern returns a regular expression fragment matching the textual forms
// of valid values for the option. The fragment has exactly one capturing
// group, which holds the value with any quoting removed.
//
// Choices take precedence over bounds, which take precedence over the
// kind's default pattern.
func (o *Option) Pattern() string {
	switch {
	case len(o.choices) > 0:
		alts := make([]string, len(o.choices))
		for i, c := range o.choices {
			alts[i] = regexp.QuoteMeta(c.Value)
		}
		return o.quote("(" + strings.Join(alts, "|") + ")")
	case o.bounded() && o.kind == Number:
		lo, hi := o.numberRange()
		return "(" + rangePattern(lo, hi) + ")"
	case o.bounded() && o.kind == Text:
		lo, hi := o.lengthRange()
		rep := strconv.FormatInt(lo, 10) + ","
		if hi >= 0 {
			rep += strconv.FormatInt(hi, 10)
		}
		return o.quote("(.{" + rep + "})")
	default:
		return defaultPatterns[o.kind]
	}
}

// quote wraps a Text fragment in the literal double quotes that delimit
// text values.
func (o *Option) quote(s string) string {
	if o.kind != Text {
		return s
	}
	return `"` + s + `"`
}
