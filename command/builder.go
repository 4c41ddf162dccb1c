package command

import (
	"fmt"
	"slices"

	"github.com/zephyrtronium/msgcmd/option"
	"github.com/zephyrtronium/msgcmd/perm"
)

// Builder accumulates the definition of a command.
// A Builder must not be used concurrently.
type Builder struct {
	cmd Command
}

// New creates a builder with placeholder name and description.
func New() *Builder {
	return &Builder{
		cmd: Command{
			name:        "No name implemented",
			description: "No description implemented",
		},
	}
}

func invalid(format string, args ...any) *option.ValidationError {
	return &option.ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// SetName sets the name that invokes the command.
func (b *Builder) SetName(name string) *Builder {
	if name == "" {
		panic(invalid("command name must be at least one character long"))
	}
	b.cmd.name = name
	return b
}

// SetDescription sets the command's description.
func (b *Builder) SetDescription(description string) *Builder {
	if description == "" {
		panic(invalid("command description must be at least one character long"))
	}
	b.cmd.description = description
	return b
}

// SetAliases replaces the command's aliases. Duplicates are removed,
// keeping the first occurrence.
func (b *Builder) SetAliases(aliases ...string) *Builder {
	if len(aliases) == 0 {
		panic(invalid("there must be at least one alias"))
	}
	if slices.Contains(aliases, "") {
		panic(invalid("aliases must be at least one character long"))
	}
	b.cmd.aliases = uniq(aliases)
	return b
}

// uniq returns a copy of s with duplicates removed, keeping the first of
// each.
func uniq(s []string) []string {
	r := make([]string, 0, len(s))
	for _, v := range s {
		if !slices.Contains(r, v) {
			r = append(r, v)
		}
	}
	return r
}

// SetRoles replaces the role IDs required to use the command.
func (b *Builder) SetRoles(roles ...string) *Builder {
	if len(roles) == 0 {
		panic(invalid("there must be at least one role"))
	}
	if slices.Contains(roles, "") {
		panic(invalid("role IDs must be at least one character long"))
	}
	b.cmd.roles = uniq(roles)
	return b
}

// SetPermissions replaces the permissions required to use the command.
func (b *Builder) SetPermissions(perms ...perm.Permission) *Builder {
	if len(perms) == 0 {
		panic(invalid("there must be at least one permission"))
	}
	var s perm.Permission
	for _, p := range perms {
		if p == 0 {
			panic(invalid("permissions must name at least one flag"))
		}
		s |= p
	}
	b.cmd.perms = s
	return b
}

// AddOption appends an option of the given kind. The option passed to
// compose is fresh; compose returns the option to add, normally the same
// one after calling its setters.
func (b *Builder) AddOption(kind option.Kind, compose func(*option.Option) *option.Option) *Builder {
	o := option.New(kind)
	if compose != nil {
		o = compose(o)
	}
	if o == nil || o.Kind() != kind {
		panic(invalid("option composer must return a %v option", kind))
	}
	b.cmd.options = append(b.cmd.options, o)
	return b
}

// AddStringOption appends a quoted text option.
func (b *Builder) AddStringOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.Text, compose)
}

// AddNumberOption appends an integer option.
func (b *Builder) AddNumberOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.Number, compose)
}

// AddBooleanOption appends a true/false option.
func (b *Builder) AddBooleanOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.Boolean, compose)
}

// AddMemberOption appends a user mention option.
func (b *Builder) AddMemberOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.UserMention, compose)
}

// AddChannelOption appends a channel mention option.
func (b *Builder) AddChannelOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.ChannelMention, compose)
}

// AddRoleOption appends a role mention option.
func (b *Builder) AddRoleOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.RoleMention, compose)
}

// AddMentionableOption appends an option accepting any mention.
func (b *Builder) AddMentionableOption(compose func(*option.Option) *option.Option) *Builder {
	return b.AddOption(option.GenericMention, compose)
}

// Build returns a frozen copy of the command. Later changes to the builder
// or to options passed through it do not affect the result.
func (b *Builder) Build() *Command {
	c := b.cmd
	c.aliases = slices.Clone(c.aliases)
	c.roles = slices.Clone(c.roles)
	c.options = make([]*option.Option, len(b.cmd.options))
	for i, o := range b.cmd.options {
		c.options[i] = o.Snapshot()
	}
	return &c
}
