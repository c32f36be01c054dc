package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// RunInteractive serves a terminal with line editing, history and Tab
// completion through the command table.
func (c *Console) RunInteractive(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) []string {
		return c.completeLine(ctx, input)
	})

	for ctx.Err() == nil {
		input, err := line.Prompt(c.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch strings.TrimSpace(input) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		line.AppendHistory(input)
		c.Handle(ctx, input)
	}
	return nil
}

// completeLine turns word candidates into whole-line candidates as liner
// expects them.
func (c *Console) completeLine(ctx context.Context, input string) []string {
	cands := c.Complete(ctx, input)
	if len(cands) == 0 {
		return nil
	}
	head := ""
	if i := strings.LastIndexAny(input, " \t"); i >= 0 {
		head = input[:i+1]
	}
	out := make([]string, 0, len(cands))
	for _, cand := range cands {
		out = append(out, head+cand+" ")
	}
	return out
}
