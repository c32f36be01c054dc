package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/commandgate/internal/discord"
	"github.com/keshon/commandgate/pkg/cmd"
)

// GuildSender is a player speaking inside a guild.
type GuildSender interface {
	cmd.Sender
	GuildID() string
	Session() *discordgo.Session
}

// Whois describes a guild member.
type Whois struct {
	// Fetcher returns how members are loaded for sender.
	Fetcher func(sender GuildSender) discord.MemberFetcher
}

func whoisDefinition() *cmd.Definition {
	return &cmd.Definition{
		Name:        "whois",
		Description: "Show who a server member is",
		Usage:       "<@member>",
		PlayerOnly:  true,
		Executor: &Whois{Fetcher: func(s GuildSender) discord.MemberFetcher {
			return discord.SessionMemberFetcher(s.Session())
		}},
	}
}

func (w *Whois) Execute(_ context.Context, inv *cmd.Invocation) error {
	s, ok := inv.Sender.(GuildSender)
	if !ok || s.GuildID() == "" {
		inv.Sender.SendMessage("This command only works in a server.")
		return nil
	}

	resolver := discord.MemberResolver(w.Fetcher(s), s.GuildID())
	cmd.Next(inv.Args, resolver).
		IfPresent(func(m *discordgo.Member) {
			inv.Sender.SendMessage(describeMember(m))
		}).
		OrElse(func(reason cmd.FailReason) {
			switch reason {
			case cmd.ParsedNull:
				inv.Sender.SendMessage("I can't find that member.")
			case cmd.ParsedNotType:
				inv.Sender.SendMessage("That is not a mention or user ID.")
			default:
				inv.Sender.SendMessage(usage(inv, "<@member>"))
			}
		})
	return nil
}

func describeMember(m *discordgo.Member) string {
	var b strings.Builder
	name := "unknown"
	id := ""
	if m.User != nil {
		name, id = m.User.Username, m.User.ID
	}
	fmt.Fprintf(&b, "%s (%s)", name, id)
	if m.Nick != "" {
		fmt.Fprintf(&b, ", nick %s", m.Nick)
	}
	if !m.JoinedAt.IsZero() {
		fmt.Fprintf(&b, ", joined %s", m.JoinedAt.Format("2006-01-02"))
	}
	if len(m.Roles) > 0 {
		fmt.Fprintf(&b, ", %d roles", len(m.Roles))
	}
	return b.String()
}
