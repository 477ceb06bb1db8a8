package prompt

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Manager is a named registry of templates sharing one provider resolver.
//
// Like the provider registry, it is populated at startup and read-mostly
// afterwards; the mutex covers registration racing against lookups during
// bring-up, not steady-state traffic.
type Manager struct {
	mu        sync.RWMutex
	templates map[string]*Template
	resolver  Resolver
	logger    zerolog.Logger
}

// NewManager creates an empty template registry.
func NewManager(logger zerolog.Logger) *Manager {
	return &Manager{
		templates: make(map[string]*Template),
		logger:    logger,
	}
}

// Default is the process-wide template registry. It starts with a no-op
// logger; use NewManager for a registry that logs.
var Default = NewManager(zerolog.Nop())

// Register adds a template to the registry. A second template with the same
// name is rejected and the existing entry is left untouched. The manager's
// shared resolver is attached to templates that do not carry their own.
func (m *Manager) Register(t *Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.templates[t.Name()]; exists {
		return fmt.Errorf("template %q already exists", t.Name())
	}
	if m.resolver != nil && !t.HasResolver() {
		t.SetResolver(m.resolver)
	}
	m.templates[t.Name()] = t
	return nil
}

// SetResolver stores the shared resolver and back-fills every registered
// template lacking its own. Explicit per-template resolvers are not
// overridden.
func (m *Manager) SetResolver(r Resolver) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resolver = r
	for _, t := range m.templates {
		if !t.HasResolver() {
			t.SetResolver(r)
		}
	}
}

// Get returns the template registered under name.
func (m *Manager) Get(name string) (*Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return t, nil
}

// Format formats the named template for a model or provider. See
// Template.Format.
func (m *Manager) Format(name, modelOrProvider string, values map[string]string) (Payload, error) {
	t, err := m.Get(name)
	if err != nil {
		return nil, err
	}
	return t.Format(modelOrProvider, values)
}

// Names returns the sorted names of all registered templates.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := lo.Keys(m.templates)
	sort.Strings(names)
	return names
}

// Reset removes all registered templates and the shared resolver. Intended
// for test isolation.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.templates = make(map[string]*Template)
	m.resolver = nil
}
