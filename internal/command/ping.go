package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/commandgate/internal/middleware"
	"github.com/keshon/commandgate/pkg/cmd"
)

type sessionSender interface {
	Session() *discordgo.Session
}

func pingDefinition(cd *middleware.Cooldown) *cmd.Definition {
	return &cmd.Definition{
		Name:        "ping",
		Description: "Check the bot is alive and how many commands you have left",
		Usage:       "[text]",
		Executor: cmd.ExecutorFunc(func(_ context.Context, inv *cmd.Invocation) error {
			var b strings.Builder
			b.WriteString("🏓 Pong!")
			if s, ok := inv.Sender.(sessionSender); ok && s.Session() != nil {
				fmt.Fprintf(&b, " %dms", s.Session().HeartbeatLatency().Milliseconds())
			}
			if text, err := inv.Args.Joined(0); err == nil {
				b.WriteString(" " + text)
			}
			if n := cd.Remaining(inv.Sender); n >= 0 {
				fmt.Fprintf(&b, " (%d commands left this minute)", n)
			}
			inv.Sender.SendMessage(b.String())
			return nil
		}),
	}
}
