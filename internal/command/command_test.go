package command

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/commandgate/internal/discord"
	"github.com/keshon/commandgate/internal/middleware"
	"github.com/keshon/commandgate/internal/storage"
	"github.com/keshon/commandgate/pkg/cmd"
)

type sender struct {
	name   string
	guild  string
	player bool
	perms  map[string]bool
	got    []string
}

func newMember(name string, perms ...string) *sender {
	s := &sender{name: name, guild: "g1", player: true, perms: map[string]bool{}}
	for _, p := range perms {
		s.perms[p] = true
	}
	return s
}

func (s *sender) Name() string { return s.name }
func (s *sender) ID() string { return s.name }
func (s *sender) Scope() string { return s.guild }
func (s *sender) IsPlayer() bool { return s.player }
func (s *sender) HasPermission(p string) bool { return s.perms[p] }
func (s *sender) SendMessage(text string) { s.got = append(s.got, text) }
func (s *sender) GuildID() string { return s.guild }
func (s *sender) Session() *discordgo.Session { return nil }

func (s *sender) last() string {
	if len(s.got) == 0 {
		return ""
	}
	return s.got[len(s.got)-1]
}

func newManager(t *testing.T, perMinute int) *cmd.Manager {
	t.Helper()
	m, _ := newManagerWithStore(t, perMinute)
	return m
}

func newManagerWithStore(t *testing.T, perMinute int) (*cmd.Manager, *storage.Storage) {
	t.Helper()
	store, err := storage.New(filepath.Join(t.TempDir(), "datastore.json"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := cmd.NewManager(nil, nil, cmd.Messages{})
	require.NoError(t, RegisterAll(m, store, middleware.NewCooldown(perMinute)))
	return m, store
}

func run(t *testing.T, m *cmd.Manager, s cmd.Sender, label string, tokens ...string) {
	t.Helper()
	h, ok := m.Lookup(label)
	require.True(t, ok, "no command %q", label)
	handled, err := h.Dispatch(context.Background(), s, label, tokens)
	require.NoError(t, err)
	require.True(t, handled)
}

func TestStockCommandsSupportHelp(t *testing.T) {
	m := newManager(t, 0)
	require.NoError(t, m.EnableHelp("help", ""))

	s := newMember("alice")
	run(t, m, s, "help")
	assert.Contains(t, s.got, "/add <a> <b> - Add two whole numbers")
	assert.Len(t, s.got, 6)
}

func TestAdd(t *testing.T) {
	m := newManager(t, 0)
	s := newMember("alice")

	run(t, m, s, "add", "2", "3")
	assert.Equal(t, "2 + 3 = 5", s.last())

	run(t, m, s, "sum", "2", "x")
	assert.Equal(t, "<b> must be a whole number.", s.last())

	run(t, m, s, "sum", "2")
	assert.Equal(t, "Usage: /sum <a> <b>", s.last())
}

func TestEcho(t *testing.T) {
	m := newManager(t, 0)
	s := newMember("alice")

	run(t, m, s, "say", "hello", "there")
	assert.Equal(t, "hello there", s.last())

	run(t, m, s, "echo")
	assert.Equal(t, "Usage: /echo <text...>", s.last())
}

func TestPing(t *testing.T) {
	m := newManager(t, 0)
	s := newMember("alice")
	run(t, m, s, "ping", "hi")
	assert.Equal(t, "🏓 Pong! hi", s.last())
}

func TestCooldown(t *testing.T) {
	m := newManager(t, 2)
	s := newMember("alice")

	run(t, m, s, "ping")
	assert.Equal(t, "🏓 Pong! (1 commands left this minute)", s.last())
	run(t, m, s, "echo", "x")
	run(t, m, s, "echo", "y")
	assert.Equal(t, "Slow down! You can run 2 commands per minute.", s.last())

	other := newMember("bob")
	run(t, m, other, "echo", "z")
	assert.Equal(t, "z", other.last())
}

func TestThrottledRunsAreNotRecorded(t *testing.T) {
	m, store := newManagerWithStore(t, 1)
	s := newMember("alice")

	run(t, m, s, "echo", "ran")
	run(t, m, s, "echo", "refused")
	assert.Equal(t, "Slow down! You can run 1 commands per minute.", s.last())

	records, err := store.FetchCommandHistory("g1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ran", records[0].Args)

	n, err := store.CommandCount("g1", "echo")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRollEval(t *testing.T) {
	r := &Roller{Intn: func(n int) int { return n - 1 }}

	tests := []struct {
		formula string
		total   int
		pretty  string
		err     string
	}{
		{formula: "2d6+3", total: 15, pretty: "2d6 [6, 6] + 3"},
		{formula: "1d4*2", total: 8, pretty: "1d4 [4] * 2"},
		{formula: "10 - d20", total: -10, pretty: "10 - d20 [20]"},
		{formula: "5/0", err: "Can't divide by zero."},
		{formula: "*2", err: "Can't multiply or divide by nothing."},
		{formula: "d1", err: "Failed to evaluate d1: invalid dice sides"},
		{formula: "101d6", err: "Failed to evaluate 101d6: too big. max 100 dice, 1000 sides"},
		{formula: "abc", err: "Can't parse your formula. Try something like 2d6+1d4*2-3"},
		{formula: "1000000000*1000000000*10", err: "The result is too big."},
		{formula: "1000000000+1000000000", err: "The result is too big."},
		{formula: "99999999999999999999", err: "Failed to evaluate 99999999999999999999: not a number or dice"},
		{formula: "2000000000", err: "Failed to evaluate 2000000000: too big. max 1000000000"},
		{formula: "1000000000*1", total: 1000000000, pretty: "1000000000 * 1"},
	}
	for _, tt := range tests {
		t.Run(tt.formula, func(t *testing.T) {
			total, pretty, err := r.Eval(tt.formula)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Equal(t, tt.pretty, pretty)
		})
	}
}

func TestRollComplete(t *testing.T) {
	r := &Roller{}
	inv := &cmd.Invocation{Sender: newMember("alice"), Label: "roll", Args: cmd.NewArguments(nil, []string{"1d"})}
	assert.Equal(t, []string{"1d20", "1d100"}, r.Complete(context.Background(), inv))

	inv.Args = cmd.NewArguments(nil, []string{"1d6", "+"})
	assert.Nil(t, r.Complete(context.Background(), inv))
}

func TestHistory(t *testing.T) {
	m := newManager(t, 0)
	alice := newMember("alice")
	mod := newMember("mod", "view_audit_log")

	run(t, m, alice, "history")
	assert.Equal(t, cmd.DefaultMessages().NoPermission, alice.last())

	run(t, m, mod, "history")
	assert.Equal(t, "No commands have been run here yet.", mod.last())

	run(t, m, alice, "add", "1", "2")
	run(t, m, alice, "say", "hi")
	run(t, m, mod, "history", "1")
	assert.Contains(t, mod.last(), "alice: /say hi")
	assert.NotContains(t, mod.last(), "/add")

	run(t, m, mod, "log")
	assert.Contains(t, mod.last(), "/add 1 2")
	assert.Contains(t, mod.last(), "mod: /history")

	run(t, m, mod, "history", "many")
	assert.Equal(t, "Usage: /history [count]", mod.last())
	run(t, m, mod, "history", "0")
	assert.Equal(t, "Count must be at least 1.", mod.last())
}

func TestWhois(t *testing.T) {
	members := map[string]*discordgo.Member{
		"42": {User: &discordgo.User{ID: "42", Username: "alice"}, Nick: "Al"},
	}
	w := &Whois{Fetcher: func(GuildSender) discord.MemberFetcher {
		return func(_, userID string) (*discordgo.Member, error) {
			if m, ok := members[userID]; ok {
				return m, nil
			}
			return nil, errors.New("unknown member")
		}
	}}

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"mention", []string{"<@42>"}, "alice (42), nick Al"},
		{"bare id", []string{"42"}, "alice (42), nick Al"},
		{"unknown", []string{"<@!7>"}, "I can't find that member."},
		{"not a mention", []string{"bob"}, "That is not a mention or user ID."},
		{"missing", nil, "Usage: /whois <@member>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMember("bob")
			inv := &cmd.Invocation{Sender: s, Label: "whois", Args: cmd.NewArguments(nil, tt.tokens)}
			require.NoError(t, w.Execute(context.Background(), inv))
			assert.Equal(t, tt.want, s.last())
		})
	}

	dm := newMember("bob")
	dm.guild = ""
	inv := &cmd.Invocation{Sender: dm, Label: "whois", Args: cmd.NewArguments(nil, []string{"42"})}
	require.NoError(t, w.Execute(context.Background(), inv))
	assert.Equal(t, "This command only works in a server.", dm.last())
}

func TestWhoisIsPlayerOnly(t *testing.T) {
	m := newManager(t, 0)
	console := newMember("console")
	console.player = false
	run(t, m, console, "whois", "42")
	assert.Equal(t, cmd.DefaultMessages().NoConsole, console.last())
}
