// Package console serves the command table on a line-based terminal. The
// console sender holds every permission but is not a player.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"unicode"

	"github.com/keshon/commandgate/internal/table"
)

const completePrefix = "complete "

// Sender is the operator at the console.
type Sender struct {
	mu  sync.Mutex
	out io.Writer
}

func NewSender(out io.Writer) *Sender { return &Sender{out: out} }

func (s *Sender) Name() string { return "console" }
func (s *Sender) ID() string { return "console" }
func (s *Sender) Scope() string { return "console" }
func (s *Sender) IsPlayer() bool { return false }
func (s *Sender) HasPermission(string) bool { return true }

func (s *Sender) SendMessage(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, text)
}

// Console reads one command per line and dispatches it.
type Console struct {
	table  *table.Table
	sender *Sender
	prompt string
}

func New(tbl *table.Table, out io.Writer) *Console {
	return &Console{table: tbl, sender: NewSender(out), prompt: "> "}
}

// Run processes lines from r until EOF, "exit" or ctx is done.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(c.sender.out, c.prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		c.Handle(ctx, line)
	}
}

// Handle runs one console line. "complete <line>" prints completion
// candidates instead of running the command.
func (c *Console) Handle(ctx context.Context, line string) {
	if strings.HasPrefix(line, completePrefix) {
		for _, s := range c.Complete(ctx, strings.TrimPrefix(line, completePrefix)) {
			c.sender.SendMessage(s)
		}
		return
	}

	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return
	}
	label := fields[0]
	h, ok := c.table.Lookup(label)
	if !ok {
		c.sender.SendMessage(fmt.Sprintf("Unknown command %q. Known commands: %s", label, strings.Join(c.table.Names(), ", ")))
		return
	}
	if _, err := h.Dispatch(ctx, c.sender, label, fields[1:]); err != nil {
		log.Printf("[ERR] Error running command %s: %v", label, err)
		c.sender.SendMessage(fmt.Sprintf("Error running command: %v", err))
	}
}

// Complete returns candidates for the last word of a partial line. While
// the label itself is being typed, matching labels are offered.
func (c *Console) Complete(ctx context.Context, partial string) []string {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimLeftFunc(partial, unicode.IsSpace), "/"))
	if partial == "" || (len(partial) > 0 && unicode.IsSpace(rune(partial[len(partial)-1]))) {
		fields = append(fields, "")
	}
	if len(fields) <= 1 {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		return c.table.Labels(prefix)
	}
	h, ok := c.table.Lookup(fields[0])
	if !ok {
		return nil
	}
	out, ok := h.Complete(ctx, c.sender, fields[0], fields[1:])
	if !ok {
		return nil
	}
	return out
}
