// Package perm provides permission flags for command gates.
//
// Flags use Discord's permission bit values, so a member's permission
// integer from discordgo converts directly to a [Permission].
package perm

import (
	"fmt"
	"math/bits"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Permission is a set of permission flags.
type Permission int64

const (
	CreateInstantInvite Permission = Permission(discordgo.PermissionCreateInstantInvite)
	KickMembers         Permission = Permission(discordgo.PermissionKickMembers)
	BanMembers          Permission = Permission(discordgo.PermissionBanMembers)
	Administrator       Permission = Permission(discordgo.PermissionAdministrator)
	ManageChannels      Permission = Permission(discordgo.PermissionManageChannels)
	AddReactions        Permission = Permission(discordgo.PermissionAddReactions)
	ViewAuditLogs       Permission = Permission(discordgo.PermissionViewAuditLogs)
	ViewChannel         Permission = Permission(discordgo.PermissionViewChannel)
	SendMessages        Permission = Permission(discordgo.PermissionSendMessages)
	SendTTSMessages     Permission = Permission(discordgo.PermissionSendTTSMessages)
	ManageMessages      Permission = Permission(discordgo.PermissionManageMessages)
	EmbedLinks          Permission = Permission(discordgo.PermissionEmbedLinks)
	AttachFiles         Permission = Permission(discordgo.PermissionAttachFiles)
	ReadMessageHistory  Permission = Permission(discordgo.PermissionReadMessageHistory)
	MentionEveryone     Permission = Permission(discordgo.PermissionMentionEveryone)
	UseExternalEmojis   Permission = Permission(discordgo.PermissionUseExternalEmojis)
	Connect             Permission = Permission(discordgo.PermissionVoiceConnect)
	Speak               Permission = Permission(discordgo.PermissionVoiceSpeak)
	MuteMembers         Permission = Permission(discordgo.PermissionVoiceMuteMembers)
	DeafenMembers       Permission = Permission(discordgo.PermissionVoiceDeafenMembers)
	MoveMembers         Permission = Permission(discordgo.PermissionVoiceMoveMembers)
	UseVAD              Permission = Permission(discordgo.PermissionVoiceUseVAD)
	PrioritySpeaker     Permission = Permission(discordgo.PermissionVoicePrioritySpeaker)
	Stream              Permission = Permission(discordgo.PermissionVoiceStreamVideo)
	ChangeNickname      Permission = Permission(discordgo.PermissionChangeNickname)
	ManageNicknames     Permission = Permission(discordgo.PermissionManageNicknames)
	ManageRoles         Permission = Permission(discordgo.PermissionManageRoles)
	ManageWebhooks      Permission = Permission(discordgo.PermissionManageWebhooks)
	ModerateMembers     Permission = Permission(discordgo.PermissionModerateMembers)
)

type flag struct {
	p Permission
	// key is the name used in configuration.
	key string
	// name is the name shown to users.
	name string
}

var flags = []flag{
	{CreateInstantInvite, "CreateInstantInvite", "Create Instant Invite"},
	{KickMembers, "KickMembers", "Kick Members"},
	{BanMembers, "BanMembers", "Ban Members"},
	{Administrator, "Administrator", "Administrator"},
	{ManageChannels, "ManageChannels", "Manage Channels"},
	{AddReactions, "AddReactions", "Add Reactions"},
	{ViewAuditLogs, "ViewAuditLogs", "View Audit Logs"},
	{ViewChannel, "ViewChannel", "View Channel"},
	{SendMessages, "SendMessages", "Send Messages"},
	{SendTTSMessages, "SendTTSMessages", "Send TTS Messages"},
	{ManageMessages, "ManageMessages", "Manage Messages"},
	{EmbedLinks, "EmbedLinks", "Embed Links"},
	{AttachFiles, "AttachFiles", "Attach Files"},
	{ReadMessageHistory, "ReadMessageHistory", "Read Message History"},
	{MentionEveryone, "MentionEveryone", "Mention Everyone"},
	{UseExternalEmojis, "UseExternalEmojis", "Use External Emojis"},
	{Connect, "Connect", "Connect to Voice Channel"},
	{Speak, "Speak", "Speak"},
	{MuteMembers, "MuteMembers", "Mute Members"},
	{DeafenMembers, "DeafenMembers", "Deafen Members"},
	{MoveMembers, "MoveMembers", "Move Members"},
	{UseVAD, "UseVAD", "Use Voice Activity Detection"},
	{PrioritySpeaker, "PrioritySpeaker", "Priority Speaker"},
	{Stream, "Stream", "Stream Video"},
	{ChangeNickname, "ChangeNickname", "Change Nickname"},
	{ManageNicknames, "ManageNicknames", "Manage Nicknames"},
	{ManageRoles, "ManageRoles", "Manage Roles"},
	{ManageWebhooks, "ManageWebhooks", "Manage Webhooks"},
	{ModerateMembers, "ModerateMembers", "Moderate Members"},
}

// Has reports whether s includes every flag in p.
// Administrator includes all permissions.
func (s Permission) Has(p Permission) bool {
	if s&Administrator != 0 {
		return true
	}
	return s&p == p
}

// Flags returns the individual flags in s in ascending order.
func (s Permission) Flags() []Permission {
	var r []Permission
	for u := uint64(s); u != 0; u &= u - 1 {
		r = append(r, Permission(1)<<bits.TrailingZeros64(u))
	}
	return r
}

// String returns the display names of the flags in s joined by commas.
// Flags without a known name are formatted in hexadecimal.
func (s Permission) String() string {
	if s == 0 {
		return "None"
	}
	var names []string
	for _, p := range s.Flags() {
		k := slices.IndexFunc(flags, func(f flag) bool { return f.p == p })
		if k < 0 {
			names = append(names, fmt.Sprintf("0x%x", int64(p)))
			continue
		}
		names = append(names, flags[k].name)
	}
	return strings.Join(names, ", ")
}

// Parse parses the name of a single permission. Case, spaces, and
// underscores are ignored, so AddReactions, ADD_REACTIONS, and Add Reactions
// are all the same permission.
func Parse(name string) (Permission, error) {
	key := normalize(name)
	for _, f := range flags {
		if normalize(f.key) == key || normalize(f.name) == key {
			return f.p, nil
		}
	}
	return 0, fmt.Errorf("unknown permission %q", name)
}

// ParseAll parses a list of permission names into their union.
func ParseAll(names []string) (Permission, error) {
	var s Permission
	for _, name := range names {
		p, err := Parse(name)
		if err != nil {
			return 0, err
		}
		s |= p
	}
	return s, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer("_", "", " ", "", "-", "").Replace(s))
}
