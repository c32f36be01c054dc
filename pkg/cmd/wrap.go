package cmd

import "context"

// Unwrappable is implemented by wrapped executors so callers can reach the
// underlying executor (e.g. to type-assert to Completer).
type Unwrappable interface {
	Executor
	Unwrap() Executor
}

// Wrapped wraps an executor with a custom run function. Used by middleware.
type Wrapped struct {
	Inner   Executor
	RunFunc func(ctx context.Context, inv *Invocation) error
}

// Execute runs the wrapper's RunFunc.
func (w *Wrapped) Execute(ctx context.Context, inv *Invocation) error {
	if w.RunFunc != nil {
		return w.RunFunc(ctx, inv)
	}
	return w.Inner.Execute(ctx, inv)
}

// Complete forwards to the root executor when it can complete.
func (w *Wrapped) Complete(ctx context.Context, inv *Invocation) []string {
	if c, ok := Root(w.Inner).(Completer); ok {
		return c.Complete(ctx, inv)
	}
	return nil
}

// Unwrap returns the inner executor.
func (w *Wrapped) Unwrap() Executor { return w.Inner }

// Wrap returns an executor that runs run instead of e.Execute.
func Wrap(e Executor, run func(ctx context.Context, inv *Invocation) error) Executor {
	return &Wrapped{Inner: e, RunFunc: run}
}

// Root unwraps e until the underlying executor is not Unwrappable.
func Root(e Executor) Executor {
	for {
		if u, ok := e.(Unwrappable); ok {
			e = u.Unwrap()
		} else {
			return e
		}
	}
}

// CompleterOf returns the completer behind e, if any. A wrapper only counts
// as a completer when its root executor is one.
func CompleterOf(e Executor) (Completer, bool) {
	root, ok := Root(e).(Completer)
	if !ok {
		return nil, false
	}
	if c, ok := e.(Completer); ok {
		return c, true
	}
	return root, true
}
