package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/commandgate/pkg/cmd"
)

const defaultHistoryCount = 10

func historyDefinition(store Store) *cmd.Definition {
	return &cmd.Definition{
		Name:        "history",
		Aliases:     []string{"log"},
		Permission:  "view_audit_log",
		Description: "Show the most recent commands run here",
		Usage:       "[count]",
		Executor:    &history{store: store},
	}
}

type history struct {
	store Store
}

func (h *history) Execute(_ context.Context, inv *cmd.Invocation) error {
	count := defaultHistoryCount
	opt := cmd.NextKind[int](inv.Args, cmd.Int.Kind)
	switch {
	case opt.IsPresent():
		count = opt.MustGet()
	case opt.Reason() != cmd.NoMoreTokens:
		inv.Sender.SendMessage(usage(inv, "[count]"))
		return nil
	}
	if count < 1 {
		inv.Sender.SendMessage("Count must be at least 1.")
		return nil
	}

	records, err := h.store.FetchCommandHistory(scopeOf(inv.Sender))
	if err != nil {
		return fmt.Errorf("fetch command history: %w", err)
	}
	if len(records) == 0 {
		inv.Sender.SendMessage("No commands have been run here yet.")
		return nil
	}
	if len(records) > count {
		records = records[len(records)-count:]
	}

	lines := make([]string, 0, len(records))
	for _, r := range records {
		line := fmt.Sprintf("%s %s: /%s", r.Datetime.Format("2006-01-02 15:04"), r.Username, r.Label)
		if r.Args != "" {
			line += " " + r.Args
		}
		if r.Error != "" {
			line += " (failed)"
		}
		lines = append(lines, line)
	}
	inv.Sender.SendMessage(strings.Join(lines, "\n"))
	return nil
}

func (h *history) Complete(_ context.Context, inv *cmd.Invocation) []string {
	if inv.Args.Size() != 1 {
		return nil
	}
	prefix, _ := inv.Args.Peek()
	var out []string
	for _, s := range []string{"5", "10", "20"} {
		if strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	return out
}
