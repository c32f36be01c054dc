// Package command holds the stock commands both hosts serve.
package command

import (
	"errors"

	"github.com/keshon/commandgate/internal/middleware"
	"github.com/keshon/commandgate/internal/storage"
	"github.com/keshon/commandgate/pkg/cmd"
)

// Store is the command history the stock commands write and read.
type Store interface {
	middleware.HistoryStore
	FetchCommandHistory(scope string) ([]storage.CommandRecord, error)
}

// Definitions returns the stock commands, undecorated, in help order.
func Definitions(store Store, cd *middleware.Cooldown) []*cmd.Definition {
	return []*cmd.Definition{
		pingDefinition(cd),
		echoDefinition(),
		rollDefinition(),
		addDefinition(),
		whoisDefinition(),
		historyDefinition(store),
	}
}

// RegisterAll registers the stock commands with m. Every command is rate
// limited by cd; runs that get past the limit are logged to store.
func RegisterAll(m *cmd.Manager, store Store, cd *middleware.Cooldown) error {
	var errs []error
	for _, def := range Definitions(store, cd) {
		decorated := middleware.Decorate(def,
			middleware.WithCommandLogger(store, def.Name),
			cd.Middleware(),
		)
		if err := m.Register(decorated); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func scopeOf(s cmd.Sender) string {
	if v, ok := s.(middleware.Identified); ok {
		return v.Scope()
	}
	return "global"
}

func usage(inv *cmd.Invocation, args string) string {
	return "Usage: /" + inv.Label + " " + args
}
