package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchGating(t *testing.T) {
	tests := []struct {
		name       string
		playerOnly bool
		permission string
		sender     *testSender
		wantRun    bool
		wantMsg    string
	}{
		{"open command from console", false, "", newConsole(), true, ""},
		{"player only from console", true, "", newConsole(), false, DefaultMessages().NoConsole},
		{"player only from player", true, "", newPlayer(), true, ""},
		{"missing permission", false, "admin.kick", newPlayer(), false, DefaultMessages().NoPermission},
		{"has permission", false, "admin.kick", newPlayer("admin.kick"), true, ""},
		// The console check comes first.
		{"console without permission", true, "admin.kick", newConsole(), false, DefaultMessages().NoConsole},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			def := &Definition{Name: "kick", PlayerOnly: tc.playerOnly, Permission: tc.permission, Executor: rec}
			g := NewGate(nil, Messages{})

			handled, err := g.Dispatch(context.Background(), def, tc.sender, "kick", []string{"bob"})
			require.NoError(t, err)
			assert.True(t, handled)
			if tc.wantRun {
				assert.Equal(t, 1, rec.calls)
				assert.Equal(t, []string{"bob"}, rec.got)
				assert.Equal(t, "kick", rec.label)
				assert.Empty(t, tc.sender.messages)
			} else {
				assert.Zero(t, rec.calls)
				assert.Equal(t, []string{tc.wantMsg}, tc.sender.messages)
			}
		})
	}
}

func TestDispatchCustomMessages(t *testing.T) {
	g := NewGate(nil, Messages{NoPermission: "nope"})
	assert.Equal(t, "nope", g.Messages().NoPermission)
	assert.Equal(t, DefaultMessages().NoConsole, g.Messages().NoConsole)

	s := newPlayer()
	_, _ = g.Dispatch(context.Background(), &Definition{Name: "x", Permission: "p", Executor: &recorder{}}, s, "x", nil)
	assert.Equal(t, []string{"nope"}, s.messages)

	g.SetMessages(Messages{NoPermission: "still no", NoConsole: "players only"})
	_, _ = g.Dispatch(context.Background(), &Definition{Name: "x", PlayerOnly: true, Executor: &recorder{}}, newConsole(), "x", nil)
	assert.Equal(t, "players only", g.Messages().NoConsole)
}

func TestDispatchPassesExecutorErrors(t *testing.T) {
	boom := errors.New("boom")
	g := NewGate(nil, Messages{})
	handled, err := g.Dispatch(context.Background(), &Definition{Name: "x", Executor: &recorder{err: boom}}, newPlayer(), "x", nil)
	assert.True(t, handled)
	assert.Same(t, boom, err)
}

func TestComplete(t *testing.T) {
	g := NewGate(nil, Messages{})

	out, ok := g.Complete(context.Background(), &Definition{Name: "x", Executor: &recorder{}}, newPlayer(), "x", nil)
	assert.False(t, ok)
	assert.Nil(t, out)

	comp := &completingRecorder{recorder: recorder{complete: []string{"alpha", "beta"}}}
	def := &Definition{Name: "x", Permission: "p", PlayerOnly: true, Executor: comp}

	out, ok = g.Complete(context.Background(), def, newPlayer(), "x", []string{"a"})
	assert.True(t, ok)
	assert.Empty(t, out)
	assert.Nil(t, comp.got)

	// Completion ignores the player-only flag.
	out, ok = g.Complete(context.Background(), def, &testSender{perms: map[string]bool{"p": true}}, "x", []string{"a"})
	assert.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta"}, out)
	assert.Equal(t, []string{"a"}, comp.got)
}

func TestWrappedKeepsCompleter(t *testing.T) {
	comp := &completingRecorder{recorder: recorder{complete: []string{"z"}}}
	calls := 0
	logging := func(e Executor) Executor {
		return Wrap(e, func(ctx context.Context, inv *Invocation) error {
			calls++
			return e.Execute(ctx, inv)
		})
	}
	wrapped := Apply(comp, logging, logging)
	assert.Same(t, comp, Root(wrapped))

	c, ok := CompleterOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, []string{"z"}, c.Complete(context.Background(), &Invocation{Args: NewArguments(nil, nil)}))

	require.NoError(t, wrapped.Execute(context.Background(), &Invocation{Args: NewArguments(nil, nil)}))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, comp.calls)

	_, ok = CompleterOf(Apply(&recorder{}, logging))
	assert.False(t, ok)
}
