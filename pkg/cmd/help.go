package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

const helpKeyword = "help"

// HelpCommand lists help entries page by page. It is usually joined onto
// another command with Joiner, but also works on its own.
type HelpCommand struct {
	name      string
	paginator *Paginator
}

// NewHelpCommand returns a help command for the command called name.
func NewHelpCommand(name string, entries []HelpEntry) *HelpCommand {
	return &HelpCommand{name: name, paginator: NewPaginator(entries)}
}

func (h *HelpCommand) Paginator() *Paginator { return h.paginator }

// Execute sends page 1 when no page is given, otherwise the requested page.
// When joined, the Joiner has already consumed the "help" token.
func (h *HelpCommand) Execute(_ context.Context, inv *Invocation) error {
	args := inv.Args
	if args.Size() == 0 || h.paginator.PageCount() == 0 {
		h.sendPage(inv, 1)
		return nil
	}

	Next(args, Int).IfPresent(func(page int) {
		if page < 1 || page > h.paginator.PageCount() {
			inv.Sender.SendMessage(fmt.Sprintf(
				"I can't find help page %d. I think the last page is page %d",
				page, h.paginator.PageCount()))
			return
		}
		h.sendPage(inv, page)
	}).OrElse(func(reason FailReason) {
		inv.Sender.SendMessage(fmt.Sprintf("Usage: /%s help [page]", inv.Label))
	})
	return nil
}

// Complete offers page numbers for the page argument.
func (h *HelpCommand) Complete(_ context.Context, inv *Invocation) []string {
	args := inv.Args
	if args.Size() != 1 {
		return nil
	}
	prefix := strings.ToLower(args.NextUnsafe())
	var matches []string
	for i := 1; i <= h.paginator.PageCount(); i++ {
		s := strconv.Itoa(i)
		if strings.HasPrefix(s, prefix) {
			matches = append(matches, s)
		}
	}
	return matches
}

func (h *HelpCommand) sendPage(inv *Invocation, page int) {
	entries, err := h.paginator.Page(page)
	if err != nil {
		inv.Sender.SendMessage(fmt.Sprintf("There is no help for /%s yet.", inv.Label))
		return
	}
	for _, e := range entries {
		inv.Sender.SendMessage(fmt.Sprintf("/%s %s - %s", e.Name, e.Usage, e.Description))
	}
	if h.paginator.PageCount() > page {
		inv.Sender.SendMessage(fmt.Sprintf("Type /%s help %d for more help", inv.Label, page+1))
	}
}
