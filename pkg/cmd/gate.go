package cmd

import (
	"context"
	"sync"
	"sync/atomic"
)

// Messages are sent to senders stopped by the gate.
type Messages struct {
	NoPermission string
	NoConsole    string
}

// DefaultMessages returns the stock gate messages.
func DefaultMessages() Messages {
	return Messages{
		NoPermission: "You don't have permission to perform this command",
		NoConsole:    "The command you've tried to run is player only.",
	}
}

// Gate checks sender capabilities before handing an invocation to a
// command's executor. One Gate is shared by every command of a Manager.
type Gate struct {
	resolvers *ResolverRegistry

	mu       sync.RWMutex
	messages Messages
}

// NewGate returns a gate resolving arguments with reg. Empty messages fall
// back to the defaults.
func NewGate(reg *ResolverRegistry, msgs Messages) *Gate {
	g := &Gate{resolvers: reg}
	g.SetMessages(msgs)
	return g
}

// Messages returns the current gate messages.
func (g *Gate) Messages() Messages {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.messages
}

// SetMessages replaces the gate messages. Empty fields keep their defaults.
func (g *Gate) SetMessages(m Messages) {
	def := DefaultMessages()
	if m.NoPermission == "" {
		m.NoPermission = def.NoPermission
	}
	if m.NoConsole == "" {
		m.NoConsole = def.NoConsole
	}
	g.mu.Lock()
	g.messages = m
	g.mu.Unlock()
}

// Dispatch runs def for sender. Player-only commands refuse non-player
// senders, then the permission is checked; in both cases the sender gets
// the configured message and the executor is not called. Dispatch always
// reports the invocation as handled. Executor errors are returned as is.
func (g *Gate) Dispatch(ctx context.Context, def *Definition, sender Sender, label string, tokens []string) (bool, error) {
	inv := &Invocation{
		Sender: sender,
		Label:  label,
		Args:   NewArguments(g.resolvers, tokens),
	}

	if def.PlayerOnly && !sender.IsPlayer() {
		sender.SendMessage(g.Messages().NoConsole)
		return true, nil
	}
	if !def.HasPermission(sender) {
		sender.SendMessage(g.Messages().NoPermission)
		return true, nil
	}
	return true, def.Executor.Execute(ctx, inv)
}

// Complete asks def's executor for completion candidates. The second result
// is false when the executor cannot complete, so the host should use its own
// default. Senders without the permission get no candidates.
func (g *Gate) Complete(ctx context.Context, def *Definition, sender Sender, label string, tokens []string) ([]string, bool) {
	c, ok := CompleterOf(def.Executor)
	if !ok {
		return nil, false
	}
	if !def.HasPermission(sender) {
		return []string{}, true
	}
	inv := &Invocation{
		Sender: sender,
		Label:  label,
		Args:   NewArguments(g.resolvers, tokens),
	}
	out := c.Complete(ctx, inv)
	if out == nil {
		out = []string{}
	}
	return out, true
}

// Bind returns a Handler that dispatches def through g.
func (g *Gate) Bind(def *Definition) *Handler {
	h := &Handler{gate: g}
	h.def.Store(def)
	return h
}

// Handler is one command bound to its gate. Hosts store Handlers in their
// command tables; the definition behind a Handler can be swapped (e.g. when
// help is joined onto it) without re-registering with the host.
type Handler struct {
	gate *Gate
	def  atomic.Pointer[Definition]
}

func (h *Handler) Definition() *Definition { return h.def.Load() }

func (h *Handler) swap(def *Definition) { h.def.Store(def) }

func (h *Handler) Dispatch(ctx context.Context, sender Sender, label string, tokens []string) (bool, error) {
	return h.gate.Dispatch(ctx, h.def.Load(), sender, label, tokens)
}

func (h *Handler) Complete(ctx context.Context, sender Sender, label string, tokens []string) ([]string, bool) {
	return h.gate.Complete(ctx, h.def.Load(), sender, label, tokens)
}
