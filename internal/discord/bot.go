package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/commandgate/internal/config"
	"github.com/keshon/commandgate/internal/table"
	"github.com/keshon/commandgate/pkg/cmd"
)

// Bot reads prefixed chat messages and dispatches them through the
// command table.
type Bot struct {
	cfg   *config.Config
	table *table.Table
	dg    *discordgo.Session
	ctx   context.Context
}

// NewBot returns a bot serving the commands in tbl.
func NewBot(cfg *config.Config, tbl *table.Table) *Bot {
	return &Bot{cfg: cfg, table: tbl, ctx: context.Background()}
}

// Run connects to Discord and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	b.dg = dg
	b.ctx = ctx

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Discord bot %v is running in %d guilds with %d commands.",
		r.User.Username, len(r.Guilds), len(b.table.Names()))
}

// onMessageCreate is called when a message is created
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}
	b.handleMessage(b.ctx, NewSender(s, m, b.cfg), m.Content)
}

// handleMessage dispatches content if it is a known prefixed command. It
// reports whether a command was found.
func (b *Bot) handleMessage(ctx context.Context, sender cmd.Sender, content string) bool {
	label, tokens, ok := ParseCommandLine(b.cfg.Prefix, content)
	if !ok {
		return false
	}
	h, ok := b.table.Lookup(label)
	if !ok {
		return false
	}
	if _, err := h.Dispatch(ctx, sender, label, tokens); err != nil {
		log.Printf("[ERR] Error running command %s: %v", label, err)
		sender.SendMessage(fmt.Sprintf("Error running command: %v", err))
	}
	return true
}

// ParseCommandLine splits "<prefix><label> <tokens...>" on whitespace.
func ParseCommandLine(prefix, content string) (label string, tokens []string, ok bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}
