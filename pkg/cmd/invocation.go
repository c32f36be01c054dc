// Package cmd is a transport-agnostic command core: commands declare a name,
// aliases, a permission and an executor; arguments arrive as a flat token
// list and are resolved into typed values one token at a time. How commands
// reach users (Discord messages, a console, ...) is up to host adapters.
package cmd

import "context"

// Sender is whoever invoked a command. Hosts implement it.
type Sender interface {
	Name() string
	HasPermission(permission string) bool
	// IsPlayer reports whether the sender is an interactive user rather than
	// the console.
	IsPlayer() bool
	SendMessage(text string)
}

// Invocation carries everything an executor gets for one run: the sender,
// the label the command was invoked with and the remaining arguments.
type Invocation struct {
	Sender Sender
	Label  string
	Args   *Arguments
}

// Executor runs a command.
type Executor interface {
	Execute(ctx context.Context, inv *Invocation) error
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, inv *Invocation) error

func (f ExecutorFunc) Execute(ctx context.Context, inv *Invocation) error { return f(ctx, inv) }

// Completer is implemented by executors that offer tab-completion.
type Completer interface {
	Complete(ctx context.Context, inv *Invocation) []string
}

// Definition is a command's metadata paired with its executor.
type Definition struct {
	Name    string
	Aliases []string
	// Permission required to run the command; empty means anyone may.
	Permission string
	// PlayerOnly commands refuse console senders.
	PlayerOnly  bool
	Description string
	Usage       string
	Executor    Executor
}

// HasPermission reports whether s may run the command.
func (d *Definition) HasPermission(s Sender) bool {
	return d.Permission == "" || s.HasPermission(d.Permission)
}

// Labels returns the name followed by the aliases.
func (d *Definition) Labels() []string {
	return append([]string{d.Name}, d.Aliases...)
}
