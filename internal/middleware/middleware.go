// Package middleware holds executor middleware shared by the hosts.
package middleware

import "github.com/keshon/commandgate/pkg/cmd"

// Identified is implemented by senders that carry a stable ID and the scope
// (guild, console) they speak from.
type Identified interface {
	ID() string
	Scope() string
}

const globalScope = "global"

func identify(s cmd.Sender) (id, scope string) {
	if v, ok := s.(Identified); ok {
		return v.ID(), v.Scope()
	}
	return s.Name(), globalScope
}

// Decorate returns a copy of def whose executor is wrapped by mws.
func Decorate(def *cmd.Definition, mws ...cmd.Middleware) *cmd.Definition {
	out := *def
	out.Executor = cmd.Apply(def.Executor, mws...)
	return &out
}
