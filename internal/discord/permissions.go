package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PermissionBits maps the permission names commands declare to Discord
// permission bits.
var PermissionBits = map[string]int64{
	"create_instant_invite": discordgo.PermissionCreateInstantInvite,
	"kick_members":          discordgo.PermissionKickMembers,
	"ban_members":           discordgo.PermissionBanMembers,
	"administrator":         discordgo.PermissionAdministrator,
	"manage_channels":       discordgo.PermissionManageChannels,
	"manage_guild":          discordgo.PermissionManageGuild,
	"add_reactions":         discordgo.PermissionAddReactions,
	"view_audit_log":        discordgo.PermissionViewAuditLogs,
	"view_channel":          discordgo.PermissionViewChannel,
	"send_messages":         discordgo.PermissionSendMessages,
	"manage_messages":       discordgo.PermissionManageMessages,
	"embed_links":           discordgo.PermissionEmbedLinks,
	"attach_files":          discordgo.PermissionAttachFiles,
	"read_message_history":  discordgo.PermissionReadMessageHistory,
	"mention_everyone":      discordgo.PermissionMentionEveryone,
	"manage_threads":        discordgo.PermissionManageThreads,
	"change_nickname":       discordgo.PermissionChangeNickname,
	"manage_nicknames":      discordgo.PermissionManageNicknames,
	"manage_roles":          discordgo.PermissionManageRoles,
	"manage_webhooks":       discordgo.PermissionManageWebhooks,
	"manage_events":         discordgo.PermissionManageEvents,
	"moderate_members":      discordgo.PermissionModerateMembers,
}

// permissionBit looks a permission name up, ignoring case and accepting
// dashes or dots in place of underscores.
func permissionBit(name string) (int64, bool) {
	key := strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(strings.ToLower(name))
	bit, ok := PermissionBits[key]
	return bit, ok
}
