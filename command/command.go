// Package command defines message commands: a name, aliases, positional
// options, and the roles and permissions required to use them.
//
// Commands are declared with a [Builder] and frozen with [Builder.Build].
// A frozen [*Command] is immutable and safe for concurrent use.
package command

import (
	"regexp"
	"slices"
	"strings"

	"github.com/zephyrtronium/msgcmd/option"
	"github.com/zephyrtronium/msgcmd/perm"
)

// Command is a frozen command definition.
type Command struct {
	name        string
	description string
	aliases     []string
	options     []*option.Option
	roles       []string
	perms       perm.Permission
}

func (c *Command) Name() string        { return c.name }
func (c *Command) Description() string { return c.description }

// Aliases returns the alternate names of the command in the order they were
// set.
func (c *Command) Aliases() []string { return slices.Clone(c.aliases) }

// Roles returns the IDs of roles required to use the command.
func (c *Command) Roles() []string { return slices.Clone(c.roles) }

// Permissions returns the permissions required to use the command.
func (c *Command) Permissions() perm.Permission { return c.perms }

// Options returns copies of the command's options in positional order.
func (c *Command) Options() []*option.Option {
	r := make([]*option.Option, len(c.options))
	for i, o := range c.options {
		r[i] = o.Snapshot()
	}
	return r
}

// Matches reports whether name is the command's name or one of its aliases.
func (c *Command) Matches(name string) bool {
	return name == c.name || slices.Contains(c.aliases, name)
}

// Pattern returns a regular expression matching a complete invocation of the
// command with the given prefix. Each option contributes one capturing group
// after the group holding the command name.
func (c *Command) Pattern(prefix string) string {
	var b strings.Builder
	b.WriteString(`(?m)^`)
	b.WriteString(regexp.QuoteMeta(prefix))
	b.WriteByte('(')
	b.WriteString(regexp.QuoteMeta(c.name))
	for _, a := range c.aliases {
		b.WriteByte('|')
		b.WriteString(regexp.QuoteMeta(a))
	}
	b.WriteByte(')')
	for _, o := range c.options {
		b.WriteString(`\s+`)
		b.WriteString(o.Pattern())
	}
	b.WriteByte('$')
	return b.String()
}

// Regexp compiles [Command.Pattern]. Each call returns a new regexp.
func (c *Command) Regexp(prefix string) (*regexp.Regexp, error) {
	return regexp.Compile(c.Pattern(prefix))
}

// Usage returns a one-line summary of the command's syntax.
func (c *Command) Usage(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(c.name)
	for _, o := range c.options {
		b.WriteString(" <")
		b.WriteString(o.Name())
		b.WriteString(": ")
		if ch := o.Choices(); len(ch) != 0 {
			for i, v := range ch {
				if i != 0 {
					b.WriteByte('|')
				}
				b.WriteString(v.Value)
			}
		} else {
			b.WriteString(o.Kind().String())
		}
		b.WriteByte('>')
	}
	return b.String()
}
