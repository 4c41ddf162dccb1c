package command

import (
	"slices"

	"github.com/zephyrtronium/msgcmd/message"
	"github.com/zephyrtronium/msgcmd/perm"
)

// Validate checks a message against the command on behalf of a caller with
// the given permissions and role IDs. guildRoles lists the roles that exist
// where the message was sent; required roles not among them are ignored.
//
// The first token of text is taken to be the command name and is not
// checked. Errors are ordered with permission errors first, then role
// errors, then argument errors. If the argument count is wrong, no options
// are checked and the returned values are nil. Otherwise the values hold
// one coerced value per valid option in option order.
func (c *Command) Validate(text string, perms perm.Permission, roles, guildRoles []string) ([]*Error, []any) {
	var errs []*Error
	for _, p := range c.perms.Flags() {
		if !perms.Has(p) {
			errs = append(errs, &Error{Kind: MissingPermissions, Command: c.name, Permission: p})
		}
	}
	for _, r := range c.roles {
		if slices.Contains(guildRoles, r) && !slices.Contains(roles, r) {
			errs = append(errs, &Error{Kind: MissingRoles, Command: c.name, Role: r})
		}
	}
	args := message.Split(text).Args[1:]
	if len(args) != len(c.options) {
		errs = append(errs, &Error{Kind: InvalidArgCount, Command: c.name, Want: len(c.options), Got: len(args)})
		return errs, nil
	}
	vals := make([]any, 0, len(c.options))
	for i, o := range c.options {
		v, ok := o.Coerce(args[i])
		if !ok {
			errs = append(errs, &Error{Kind: InvalidArgType, Command: c.name, Option: o.Name()})
			continue
		}
		vals = append(vals, v)
	}
	return errs, vals
}

// ValidateMessage validates a received message using the sender's
// permissions and roles.
func (c *Command) ValidateMessage(m *message.Received) ([]*Error, []any) {
	return c.Validate(m.Text, m.Permissions, m.Roles, m.GuildRoles)
}
