package message

import (
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/zephyrtronium/msgcmd/perm"
)

// FromDiscord adapts a Discord message. The guild supplies role
// definitions used to compute the sender's permissions; if it is nil, the
// permissions reported on the message's member are used instead.
func FromDiscord(m *discordgo.Message, g *discordgo.Guild) *Received {
	r := Received{
		ID:        m.ID,
		To:        m.ChannelID,
		Guild:     m.GuildID,
		Text:      m.Content,
		Timestamp: m.Timestamp.UnixMilli(),
	}
	if m.Author != nil {
		r.Sender = m.Author.ID
		r.Name = m.Author.Username
		if m.Author.GlobalName != "" {
			r.Name = m.Author.GlobalName
		}
	}
	if m.Member != nil {
		if m.Member.Nick != "" {
			r.Name = m.Member.Nick
		}
		r.Roles = slices.Clone(m.Member.Roles)
		r.Permissions = perm.Permission(m.Member.Permissions)
	}
	if g != nil {
		r.GuildRoles = make([]string, 0, len(g.Roles))
		for _, role := range g.Roles {
			r.GuildRoles = append(r.GuildRoles, role.ID)
		}
		r.Permissions = permissions(g, r.Sender, r.Roles)
	}
	return &r
}

// permissions computes a member's guild-level permissions from the
// @everyone role, whose ID is the guild ID, and the member's own roles.
func permissions(g *discordgo.Guild, user string, roles []string) perm.Permission {
	if user != "" && user == g.OwnerID {
		return perm.Administrator
	}
	var p perm.Permission
	for _, role := range g.Roles {
		if role.ID == g.ID || slices.Contains(roles, role.ID) {
			p |= perm.Permission(role.Permissions)
		}
	}
	return p
}
