package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/commandgate/internal/config"
)

// Sender is a Discord user who sent a command message.
type Sender struct {
	session   *discordgo.Session
	user      *discordgo.User
	guildID   string
	channelID string
	cfg       *config.Config

	// channelPerms and send are the Discord calls a sender needs; NewSender
	// binds them to the session.
	channelPerms func(userID, channelID string) (int64, error)
	send         func(channelID, text string) error
}

// NewSender returns the sender of message m.
func NewSender(s *discordgo.Session, m *discordgo.MessageCreate, cfg *config.Config) *Sender {
	return &Sender{
		session:   s,
		user:      m.Author,
		guildID:   m.GuildID,
		channelID: m.ChannelID,
		cfg:       cfg,
		channelPerms: func(userID, channelID string) (int64, error) {
			return s.UserChannelPermissions(userID, channelID)
		},
		send: func(channelID, text string) error {
			_, err := s.ChannelMessageSend(channelID, text)
			return err
		},
	}
}

func (s *Sender) Name() string { return s.user.Username }

func (s *Sender) ID() string { return s.user.ID }

// Scope is the guild the message came from, or the DM channel.
func (s *Sender) Scope() string {
	if s.guildID == "" {
		return "dm:" + s.channelID
	}
	return s.guildID
}

func (s *Sender) IsPlayer() bool { return true }

func (s *Sender) Session() *discordgo.Session { return s.session }

func (s *Sender) GuildID() string { return s.guildID }

func (s *Sender) User() *discordgo.User { return s.user }

// HasPermission checks permission against the sender's permissions in the
// channel. The developer and administrators pass every check; in direct
// messages only the developer does.
func (s *Sender) HasPermission(permission string) bool {
	if config.IsDeveloper(s.cfg, s.user.ID) {
		return true
	}
	if s.guildID == "" {
		return false
	}
	perms, err := s.channelPerms(s.user.ID, s.channelID)
	if err != nil {
		log.Printf("[WARN] Failed to get permissions of %s in %s: %v", s.user.ID, s.channelID, err)
		return false
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	bit, ok := permissionBit(permission)
	if !ok {
		return false
	}
	return perms&bit != 0
}

func (s *Sender) SendMessage(text string) {
	if err := s.send(s.channelID, text); err != nil {
		log.Printf("[WARN] Failed to send message to %s: %v", s.channelID, err)
	}
}
