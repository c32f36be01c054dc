package cmd

import (
	"context"
	"strings"
)

// Joiner puts a help engine and another executor under one command name.
// A first token of "help" (any case) is consumed and the rest goes to Help;
// no tokens at all also go to Help; anything else goes to Wrapped untouched.
type Joiner struct {
	Help    Executor
	Wrapped Executor
}

func (j *Joiner) routesToHelp(args *Arguments) bool {
	tok, ok := args.Peek()
	if !ok {
		return true
	}
	if strings.EqualFold(tok, helpKeyword) {
		args.Next()
		return true
	}
	return false
}

func (j *Joiner) Execute(ctx context.Context, inv *Invocation) error {
	if j.routesToHelp(inv.Args) {
		return j.Help.Execute(ctx, inv)
	}
	return j.Wrapped.Execute(ctx, inv)
}

// Complete follows the same routing as Execute. While the first token is
// still being typed, "help" is offered next to the wrapped candidates.
func (j *Joiner) Complete(ctx context.Context, inv *Invocation) []string {
	if inv.Args.Size() == 1 {
		partial, _ := inv.Args.Peek()
		var out []string
		if c, ok := CompleterOf(j.Wrapped); ok {
			out = c.Complete(ctx, &Invocation{Sender: inv.Sender, Label: inv.Label, Args: inv.Args.Copy()})
		}
		if !strings.EqualFold(partial, helpKeyword) && strings.HasPrefix(helpKeyword, strings.ToLower(partial)) {
			out = append(out, helpKeyword)
		}
		return out
	}
	if j.routesToHelp(inv.Args) {
		if c, ok := CompleterOf(j.Help); ok {
			return c.Complete(ctx, inv)
		}
		return nil
	}
	if c, ok := CompleterOf(j.Wrapped); ok {
		return c.Complete(ctx, inv)
	}
	return nil
}
