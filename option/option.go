// Package option implements typed positional arguments for message commands.
//
// An [Option] is built by calling setters on the value returned by [New].
// Setters panic with a [*ValidationError] when a call would leave the option
// in an invalid state; the panic happens at the offending call and leaves the
// option unchanged. Use [Catch] to convert such panics into errors when
// options are built from untrusted definitions.
package option

import (
	"fmt"
	"slices"
	"strconv"
)

// MaxLength is the largest length bound a Text option accepts.
// Length bounds become regular expression repetitions, which are limited to
// 1000 by package regexp.
const MaxLength = 1000

// Choice is an admissible value for an option.
type Choice struct {
	// Label is the display name of the choice.
	Label string
	// Value is the value as it appears in a message. For Number options it is
	// always a canonical base-10 integer.
	Value string
}

// Option is one typed positional argument slot in a command.
type Option struct {
	name        string
	description string
	kind        Kind

	choices []Choice

	min, max       int64
	hasMin, hasMax bool
}

// New creates an option of the given kind with placeholder name and
// description. It panics if kind is not one of the defined kinds.
func New(kind Kind) *Option {
	if !kind.valid() {
		panic(invalidf("unknown option kind %d", int(kind)))
	}
	return &Option{
		name:        "No name implemented",
		description: "No description implemented",
		kind:        kind,
	}
}

// ValidationError is the panic value of a setter call that would make an
// option or command invalid.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Catch calls f and returns the [*ValidationError] it panics with, if any.
// Other panics propagate.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(*ValidationError); ok {
			err = e
			return
		}
		panic(r)
	}()
	f()
	return nil
}

// SetName sets the name of the option.
func (o *Option) SetName(name string) *Option {
	if name == "" {
		panic(invalidf("option name must be at least one character long"))
	}
	o.name = name
	return o
}

// SetDescription sets the description of the option.
func (o *Option) SetDescription(description string) *Option {
	if description == "" {
		panic(invalidf("option description must be at least one character long"))
	}
	o.description = description
	return o
}

// AddChoice appends a choice. For Number options, value must be a base-10
// integer.
func (o *Option) AddChoice(label, value string) *Option {
	c, err := o.checkChoice(label, value)
	if err != nil {
		panic(err)
	}
	if o.hasMin || o.hasMax {
		panic(invalidf("option choices cannot be combined with a minimum or maximum"))
	}
	o.choices = append(o.choices, c)
	return o
}

// AddNumberChoice appends a choice with an integer value.
func (o *Option) AddNumberChoice(label string, value int64) *Option {
	return o.AddChoice(label, strconv.FormatInt(value, 10))
}

// SetChoices replaces all choices. If any choice is invalid or there are no
// choices, the option is left unchanged.
func (o *Option) SetChoices(choices ...Choice) *Option {
	if len(choices) == 0 {
		panic(invalidf("there must be at least one option choice"))
	}
	r := make([]Choice, 0, len(choices))
	for _, c := range choices {
		c, err := o.checkChoice(c.Label, c.Value)
		if err != nil {
			panic(err)
		}
		r = append(r, c)
	}
	if o.hasMin || o.hasMax {
		panic(invalidf("option choices cannot be combined with a minimum or maximum"))
	}
	o.choices = r
	return o
}

// checkChoice validates a choice and canonicalizes its value.
func (o *Option) checkChoice(label, value string) (Choice, *ValidationError) {
	if !o.kind.choiceable() {
		return Choice{}, invalidf("%s options cannot have choices", o.kind)
	}
	if label == "" || value == "" {
		return Choice{}, invalidf("you must provide a name and value for all option choices")
	}
	if o.kind == Number {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Choice{}, invalidf("number option choice %q has non-integer value %q", label, value)
		}
		value = strconv.FormatInt(n, 10)
	}
	return Choice{Label: label, Value: value}, nil
}

// SetMin sets the inclusive lower bound of the option. For Number options it
// bounds the value and for Text options it bounds the length in characters.
func (o *Option) SetMin(n int64) *Option {
	o.checkBound("minimum", n)
	if o.hasMax && n > o.max {
		panic(invalidf("minimum %d cannot be greater than maximum %d", n, o.max))
	}
	o.min, o.hasMin = n, true
	return o
}

// SetMax sets the inclusive upper bound of the option. For Number options it
// bounds the value and for Text options it bounds the length in characters.
func (o *Option) SetMax(n int64) *Option {
	o.checkBound("maximum", n)
	if o.hasMin && n <= o.min {
		panic(invalidf("maximum %d must be greater than minimum %d", n, o.min))
	}
	o.max, o.hasMax = n, true
	return o
}

// SetMinValue is SetMin for Number options.
func (o *Option) SetMinValue(n int64) *Option { return o.SetMin(n) }

// SetMaxValue is SetMax for Number options.
func (o *Option) SetMaxValue(n int64) *Option { return o.SetMax(n) }

// SetMinLength is SetMin for Text options.
func (o *Option) SetMinLength(n int64) *Option { return o.SetMin(n) }

// SetMaxLength is SetMax for Text options.
func (o *Option) SetMaxLength(n int64) *Option { return o.SetMax(n) }

func (o *Option) checkBound(which string, n int64) {
	if !o.kind.choiceable() {
		panic(invalidf("%s options cannot have a %s", o.kind, which))
	}
	if len(o.choices) > 0 {
		panic(invalidf("you cannot set a %s if choices are provided", which))
	}
	if n < 0 {
		panic(invalidf("%s cannot be less than 0", which))
	}
	if o.kind == Text && n > MaxLength {
		panic(invalidf("%s length cannot be greater than %d", which, MaxLength))
	}
}

// Name returns the option's name.
func (o *Option) Name() string { return o.name }

// Description returns the option's description.
func (o *Option) Description() string { return o.description }

// Kind returns the option's kind.
func (o *Option) Kind() Kind { return o.kind }

// Choices returns a copy of the option's choices.
func (o *Option) Choices() []Choice { return slices.Clone(o.choices) }

// Min returns the option's lower bound and whether it is set.
func (o *Option) Min() (int64, bool) { return o.min, o.hasMin }

// Max returns the option's upper bound and whether it is set.
func (o *Option) Max() (int64, bool) { return o.max, o.hasMax }

// Snapshot returns a copy of the option that shares no state with o.
func (o *Option) Snapshot() *Option {
	r := *o
	r.choices = slices.Clone(o.choices)
	return &r
}

// bounded reports whether the option has either bound.
func (o *Option) bounded() bool {
	return o.hasMin || o.hasMax
}

const (
	// maxSafe and minSafe stand in for unset numeric bounds.
	maxSafe = 1<<53 - 1
	minSafe = -maxSafe
)

// numberRange returns the inclusive range of a bounded Number option,
// substituting the safe-integer limits for unset bounds.
func (o *Option) numberRange() (lo, hi int64) {
	lo, hi = minSafe, maxSafe
	if o.hasMin {
		lo = o.min
	}
	if o.hasMax {
		hi = o.max
	}
	return lo, hi
}

// lengthRange returns the inclusive length range of a bounded Text option.
// hi is negative when there is no upper bound.
func (o *Option) lengthRange() (lo, hi int64) {
	lo, hi = 0, -1
	if o.hasMin {
		lo = o.min
	}
	if o.hasMax {
		hi = o.max
	}
	return lo, hi
}
