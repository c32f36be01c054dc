package cmd

// Middleware wraps an executor (e.g. logging, cooldowns).
// The wrapped value remains an Executor.
type Middleware func(Executor) Executor

// Apply applies middlewares in order; the last in the list is the outermost.
func Apply(e Executor, mws ...Middleware) Executor {
	for _, mw := range mws {
		e = mw(e)
	}
	return e
}
