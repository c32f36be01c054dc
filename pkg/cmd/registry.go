package cmd

import (
	"fmt"
	"strings"
	"sync"
)

// Host is the command table of the environment commands run in (a Discord
// bot, a console). It binds a name and its aliases to a handler and is
// responsible for resolving name collisions.
type Host interface {
	Register(name string, aliases []string, h *Handler) error
}

// Registry keeps the handlers a Manager created, by name and alias. It does
// not perform dispatch; hosts look commands up in their own tables.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]*Handler
	aliases  map[string]string
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]*Handler),
		aliases:  make(map[string]string),
	}
}

func (r *Registry) add(h *Handler) error {
	def := h.Definition()
	key := strings.ToLower(def.Name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[key]; ok {
		return fmt.Errorf("command %q already registered", def.Name)
	}
	r.handlers[key] = h
	r.order = append(r.order, key)
	for _, a := range def.Aliases {
		a = strings.ToLower(a)
		if _, taken := r.aliases[a]; !taken {
			r.aliases[a] = key
		}
	}
	return nil
}

// Get returns the handler for a name or alias, ignoring case.
func (r *Registry) Get(name string) (*Handler, bool) {
	key := strings.ToLower(name)
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.handlers[key]; ok {
		return h, true
	}
	if target, ok := r.aliases[key]; ok {
		return r.handlers[target], true
	}
	return nil, false
}

// All returns every handler in registration order.
func (r *Registry) All() []*Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*Handler, 0, len(r.order))
	for _, key := range r.order {
		list = append(list, r.handlers[key])
	}
	return list
}
