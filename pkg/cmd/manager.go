package cmd

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// HelpConfigError lists the commands that lack a description or usage
// when help is enabled.
type HelpConfigError struct {
	Commands []string
}

func (e *HelpConfigError) Error() string {
	return "commands missing help description or usage: " + strings.Join(e.Commands, ", ")
}

// Manager registers commands with a host and owns the gate and resolver
// registry they share.
type Manager struct {
	host      Host
	gate      *Gate
	resolvers *ResolverRegistry
	registry  *Registry

	helpMu   sync.Mutex
	helpName string // set when help was registered as its own command
}

// NewManager returns a manager registering into host. A nil reg gets a
// registry with the default resolvers.
func NewManager(host Host, reg *ResolverRegistry, msgs Messages) *Manager {
	if reg == nil {
		reg = NewResolverRegistry()
		RegisterDefaults(reg)
	}
	return &Manager{
		host:      host,
		gate:      NewGate(reg, msgs),
		resolvers: reg,
		registry:  NewRegistry(),
	}
}

func (m *Manager) Gate() *Gate { return m.gate }

func (m *Manager) Resolvers() *ResolverRegistry { return m.resolvers }

// Register binds def to the gate and registers it with the host.
func (m *Manager) Register(def *Definition) error {
	if def == nil || def.Name == "" {
		return errors.New("command name is required")
	}
	if def.Executor == nil {
		return fmt.Errorf("command %q has no executor", def.Name)
	}
	h := m.gate.Bind(def)
	if err := m.registry.add(h); err != nil {
		return err
	}
	if m.host != nil {
		if err := m.host.Register(def.Name, def.Aliases, h); err != nil {
			return fmt.Errorf("register %q with host: %w", def.Name, err)
		}
	}
	return nil
}

// Lookup finds a registered command by name or alias.
func (m *Manager) Lookup(name string) (*Handler, bool) {
	return m.registry.Get(name)
}

// Definitions returns the current definitions in registration order.
func (m *Manager) Definitions() []*Definition {
	handlers := m.registry.All()
	defs := make([]*Definition, 0, len(handlers))
	for _, h := range handlers {
		defs = append(defs, h.Definition())
	}
	return defs
}

// EnableHelp builds help pages from every registered command and makes
// them reachable as "/<name> help [page]". When a command called name
// exists, help is joined onto it and inherits its gate settings; otherwise
// a standalone help command guarded by permission is registered. Every
// command must have a description and a usage. Calling EnableHelp again
// rebuilds the pages; commands registered later are not picked up until
// then.
func (m *Manager) EnableHelp(name, permission string) error {
	m.helpMu.Lock()
	defer m.helpMu.Unlock()

	var (
		entries []HelpEntry
		missing []string
	)
	for _, def := range m.Definitions() {
		if m.helpName != "" && strings.EqualFold(def.Name, m.helpName) {
			continue
		}
		if def.Description == "" || def.Usage == "" {
			missing = append(missing, def.Name)
			continue
		}
		entries = append(entries, HelpEntry{Name: def.Name, Description: def.Description, Usage: def.Usage})
	}
	if len(missing) > 0 {
		return &HelpConfigError{Commands: missing}
	}

	help := NewHelpCommand(name, entries)

	h, ok := m.registry.Get(name)
	if !ok {
		def := &Definition{
			Name:        name,
			Permission:  permission,
			Description: "Shows the list of commands",
			Usage:       "[page]",
			Executor:    help,
		}
		if err := m.Register(def); err != nil {
			return err
		}
		m.helpName = name
		return nil
	}

	cur := h.Definition()
	joined := *cur
	switch e := cur.Executor.(type) {
	case *HelpCommand:
		joined.Executor = help
		joined.Permission = permission
	case *Joiner:
		joined.Executor = &Joiner{Help: help, Wrapped: e.Wrapped}
	default:
		joined.Executor = &Joiner{Help: help, Wrapped: cur.Executor}
	}
	h.swap(&joined)
	return nil
}
