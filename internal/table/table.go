// Package table is the command table hosts keep: labels (names and
// aliases) mapped to gate handlers.
package table

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/keshon/commandgate/pkg/cmd"
)

// Table implements cmd.Host. Labels are case-insensitive; the first
// registration of a label wins and later collisions are reported.
type Table struct {
	mu      sync.RWMutex
	entries map[string]*cmd.Handler
	primary map[string]bool
}

func New() *Table {
	return &Table{
		entries: make(map[string]*cmd.Handler),
		primary: make(map[string]bool),
	}
}

// Register binds name and aliases to h. A taken name is an error; taken
// aliases are skipped and reported together after the name is bound.
func (t *Table) Register(name string, aliases []string, h *cmd.Handler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := t.entries[key]; ok {
		return fmt.Errorf("label %q is already taken", name)
	}
	t.entries[key] = h
	t.primary[key] = true

	var skipped []string
	for _, a := range aliases {
		ak := strings.ToLower(a)
		if _, ok := t.entries[ak]; ok {
			skipped = append(skipped, a)
			continue
		}
		t.entries[ak] = h
	}
	if len(skipped) > 0 {
		return fmt.Errorf("aliases of %q already taken: %s", name, strings.Join(skipped, ", "))
	}
	return nil
}

// Lookup returns the handler bound to label.
func (t *Table) Lookup(label string) (*cmd.Handler, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	h, ok := t.entries[strings.ToLower(label)]
	return h, ok
}

// Names returns the primary command names, sorted.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.primary))
	for n := range t.primary {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Labels returns every label starting with prefix, sorted.
func (t *Table) Labels(prefix string) []string {
	prefix = strings.ToLower(prefix)
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []string
	for l := range t.entries {
		if strings.HasPrefix(l, prefix) {
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
