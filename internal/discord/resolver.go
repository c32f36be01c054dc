package discord

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/commandgate/pkg/cmd"
)

// MemberFetcher loads a guild member.
type MemberFetcher func(guildID, userID string) (*discordgo.Member, error)

// SessionMemberFetcher looks members up in the session state first and
// falls back to the API.
func SessionMemberFetcher(s *discordgo.Session) MemberFetcher {
	return func(guildID, userID string) (*discordgo.Member, error) {
		if s.State != nil {
			if m, err := s.State.Member(guildID, userID); err == nil {
				return m, nil
			}
		}
		return s.GuildMember(guildID, userID)
	}
}

// ParseMention extracts a user ID from <@id>, <@!id> or a bare ID.
func ParseMention(token string) (string, bool) {
	id := token
	if strings.HasPrefix(id, "<@") && strings.HasSuffix(id, ">") {
		id = strings.TrimPrefix(strings.TrimSuffix(id[2:], ">"), "!")
	}
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}

// MemberResolver resolves a mention or user ID into a member of guildID.
// Unknown members resolve to nothing rather than failing.
func MemberResolver(fetch MemberFetcher, guildID string) cmd.Resolver[*discordgo.Member] {
	return cmd.NewResolver("member", func(token string) (*discordgo.Member, error) {
		id, ok := ParseMention(token)
		if !ok {
			return nil, errors.New("not a mention or user ID")
		}
		m, err := fetch(guildID, id)
		if err != nil || m == nil {
			return nil, cmd.ErrNullResult
		}
		return m, nil
	})
}
