package middleware

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/keshon/commandgate/internal/storage"
	"github.com/keshon/commandgate/pkg/cmd"
)

// HistoryStore records command runs.
type HistoryStore interface {
	AppendCommand(scope string, rec storage.CommandRecord) error
}

// WithCommandLogger logs every run of the command called name and records
// it in store. Arguments are captured before the executor consumes them.
func WithCommandLogger(store HistoryStore, name string) cmd.Middleware {
	return func(e cmd.Executor) cmd.Executor {
		return cmd.Wrap(e, func(ctx context.Context, inv *cmd.Invocation) error {
			args := strings.Join(inv.Args.Remaining(), " ")
			err := e.Execute(ctx, inv)

			id, scope := identify(inv.Sender)
			rec := storage.CommandRecord{
				UserID:   id,
				Username: inv.Sender.Name(),
				Command:  name,
				Label:    inv.Label,
				Args:     args,
				Datetime: time.Now().UTC(),
			}
			if err != nil {
				rec.Error = err.Error()
				log.Printf("[ERR] /%s by %s failed: %v", inv.Label, inv.Sender.Name(), err)
			} else {
				log.Printf("[INFO] /%s %s by %s", inv.Label, args, inv.Sender.Name())
			}
			if store != nil {
				if e := store.AppendCommand(scope, rec); e != nil {
					log.Printf("[WARN] Failed to log command /%s: %v", name, e)
				}
			}
			return err
		})
	}
}
