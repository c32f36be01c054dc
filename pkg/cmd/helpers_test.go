package cmd

import (
	"context"
	"strings"
)

type testSender struct {
	name     string
	player   bool
	perms    map[string]bool
	messages []string
}

func newPlayer(perms ...string) *testSender {
	s := &testSender{name: "alice", player: true, perms: map[string]bool{}}
	for _, p := range perms {
		s.perms[p] = true
	}
	return s
}

func newConsole() *testSender {
	return &testSender{name: "console", perms: map[string]bool{}}
}

func (s *testSender) Name() string { return s.name }
func (s *testSender) HasPermission(p string) bool { return s.perms[p] }
func (s *testSender) IsPlayer() bool { return s.player }
func (s *testSender) SendMessage(text string) { s.messages = append(s.messages, text) }
func (s *testSender) transcript() string { return strings.Join(s.messages, "\n") }

// recorder is an executor that remembers the arguments it was given.
type recorder struct {
	calls    int
	label    string
	got      []string
	complete []string
	err      error
}

func (r *recorder) Execute(_ context.Context, inv *Invocation) error {
	r.calls++
	r.label = inv.Label
	r.got = inv.Args.Remaining()
	return r.err
}

type completingRecorder struct {
	recorder
}

func (r *completingRecorder) Complete(_ context.Context, inv *Invocation) []string {
	r.got = inv.Args.Remaining()
	return r.complete
}

type fakeHost struct {
	names map[string]*Handler
}

func newFakeHost() *fakeHost { return &fakeHost{names: map[string]*Handler{}} }

func (f *fakeHost) Register(name string, aliases []string, h *Handler) error {
	for _, n := range append([]string{name}, aliases...) {
		f.names[n] = h
	}
	return nil
}
