package message

import (
	"time"

	"github.com/zephyrtronium/msgcmd/perm"
)

// Received is a message received from a service.
type Received struct {
	// ID is the unique ID of the message.
	ID string
	// To is the channel to which the message was sent.
	To string
	// Guild is the server containing the channel. It is empty for direct
	// messages.
	Guild string
	// Sender is a unique identifier for the message sender.
	Sender string
	// Name is the display name of the message sender.
	Name string
	// Text is the text of the message.
	Text string
	// Timestamp is the timestamp of the message as milliseconds since the
	// Unix epoch.
	Timestamp int64
	// Permissions is the set of permissions the sender holds in the guild.
	Permissions perm.Permission
	// Roles is the list of role IDs the sender holds.
	Roles []string
	// GuildRoles is the list of role IDs that exist in the guild.
	GuildRoles []string
}

func (m *Received) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}
