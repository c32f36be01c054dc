package cmd

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func define(name string, exec Executor) *Definition {
	return &Definition{
		Name:        name,
		Description: "the " + name + " command",
		Usage:       "<arg>",
		Executor:    exec,
	}
}

func TestManagerRegister(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, nil, Messages{})

	def := define("kick", &recorder{})
	def.Aliases = []string{"boot"}
	require.NoError(t, m.Register(def))
	assert.Contains(t, host.names, "kick")
	assert.Contains(t, host.names, "boot")

	h, ok := m.Lookup("BOOT")
	require.True(t, ok)
	assert.Same(t, def, h.Definition())

	assert.Error(t, m.Register(define("kick", &recorder{})))
	assert.Error(t, m.Register(&Definition{Name: "x"}))
	assert.Error(t, m.Register(&Definition{Executor: &recorder{}}))

	assert.Equal(t, []string{"int", "string"}, filterKinds(m.Resolvers().Kinds(), "int", "string"))
}

func filterKinds(kinds []string, want ...string) []string {
	var out []string
	for _, k := range kinds {
		for _, w := range want {
			if k == w {
				out = append(out, k)
			}
		}
	}
	return out
}

func TestEnableHelpRequiresDescriptions(t *testing.T) {
	m := NewManager(nil, nil, Messages{})
	require.NoError(t, m.Register(define("ok", &recorder{})))
	require.NoError(t, m.Register(&Definition{Name: "nodesc", Usage: "x", Executor: &recorder{}}))
	require.NoError(t, m.Register(&Definition{Name: "nousage", Description: "x", Executor: &recorder{}}))

	err := m.EnableHelp("help", "")
	var cfgErr *HelpConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"nodesc", "nousage"}, cfgErr.Commands)
	assert.Contains(t, err.Error(), "nodesc, nousage")

	_, ok := m.Lookup("help")
	assert.False(t, ok)
}

func TestEnableHelpStandalone(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, nil, Messages{})
	for i := 0; i < 12; i++ {
		require.NoError(t, m.Register(define(fmt.Sprintf("c%02d", i), &recorder{})))
	}
	require.NoError(t, m.EnableHelp("help", "help.use"))

	h, ok := host.names["help"]
	require.True(t, ok)

	s := newPlayer()
	_, err := h.Dispatch(context.Background(), s, "help", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultMessages().NoPermission}, s.messages)

	s = newPlayer("help.use")
	_, err = h.Dispatch(context.Background(), s, "help", []string{"2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/c10 <arg> - the c10 command", "/c11 <arg> - the c11 command"}, s.messages)

	// Re-enabling rebuilds the pages and skips the help command itself.
	require.NoError(t, m.Register(define("c12", &recorder{})))
	require.NoError(t, m.EnableHelp("help", "help.use"))
	s = newPlayer("help.use")
	_, err = h.Dispatch(context.Background(), s, "help", []string{"2"})
	require.NoError(t, err)
	assert.Len(t, s.messages, 3)
}

func TestEnableHelpJoinsExistingCommand(t *testing.T) {
	host := newFakeHost()
	m := NewManager(host, nil, Messages{})

	other := &recorder{}
	tool := define("tool", other)
	tool.Permission = "tool.use"
	tool.PlayerOnly = true
	require.NoError(t, m.Register(tool))
	require.NoError(t, m.Register(define("ping", &recorder{})))
	require.NoError(t, m.EnableHelp("tool", "ignored"))

	h := host.names["tool"]
	def := h.Definition()
	assert.Equal(t, "tool.use", def.Permission)
	assert.True(t, def.PlayerOnly)
	require.IsType(t, &Joiner{}, def.Executor)

	s := newPlayer("tool.use")
	_, err := h.Dispatch(context.Background(), s, "tool", []string{"help"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/tool <arg> - the tool command", "/ping <arg> - the ping command"}, s.messages)
	assert.Zero(t, other.calls)

	_, err = h.Dispatch(context.Background(), s, "tool", []string{"status"})
	require.NoError(t, err)
	assert.Equal(t, 1, other.calls)
	assert.Equal(t, []string{"status"}, other.got)

	// The outer gate still applies to the help route.
	console := newConsole()
	_, err = h.Dispatch(context.Background(), console, "tool", []string{"help"})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultMessages().NoConsole}, console.messages)

	// Enabling again keeps a single layer of joining.
	require.NoError(t, m.EnableHelp("tool", ""))
	j := h.Definition().Executor.(*Joiner)
	assert.Same(t, other, j.Wrapped)
}
