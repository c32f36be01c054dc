package cmd

import (
	"errors"
	"fmt"
)

// PageSize is the number of help entries per page.
const PageSize = 10

// ErrPageOutOfRange is returned for pages below 1 or past the last page.
var ErrPageOutOfRange = errors.New("help page out of range")

// HelpEntry is what the help command shows for one command.
type HelpEntry struct {
	Name        string
	Description string
	Usage       string
}

// Paginator splits help entries into pages of PageSize. Pages are 1-indexed
// and computed once.
type Paginator struct {
	pages [][]HelpEntry
}

// NewPaginator pages entries in the given order.
func NewPaginator(entries []HelpEntry) *Paginator {
	all := append([]HelpEntry(nil), entries...)
	var pages [][]HelpEntry
	for i := 0; i < len(all); i += PageSize {
		end := min(i+PageSize, len(all))
		pages = append(pages, all[i:end:end])
	}
	return &Paginator{pages: pages}
}

// PageCount is ceil(entries/PageSize); zero entries give zero pages.
func (p *Paginator) PageCount() int { return len(p.pages) }

// Page returns page k.
func (p *Paginator) Page(k int) ([]HelpEntry, error) {
	if k < 1 || k > len(p.pages) {
		return nil, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, k, len(p.pages))
	}
	return append([]HelpEntry(nil), p.pages[k-1]...), nil
}

// ClampPage brings k into [1, PageCount]. It returns 0 when there are no pages.
func (p *Paginator) ClampPage(k int) int {
	switch {
	case len(p.pages) == 0:
		return 0
	case k < 1:
		return 1
	case k > len(p.pages):
		return len(p.pages)
	}
	return k
}
