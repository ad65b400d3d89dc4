package facet

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds component factories keyed by (family, name) and
// decorators keyed by name.
//
// Registration happens explicitly at startup, no init() side effects;
// lookups during a render pass are read-only. The registry is safe for
// concurrent use so independent passes can share one instance.
type Registry struct {
	mu         sync.RWMutex
	families   map[string]map[string]Factory
	decorators map[string]Decorator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		families:   make(map[string]map[string]Factory),
		decorators: make(map[string]Decorator),
	}
}

// Register adds a component factory under (family, name). Registering
// the same pair twice is an error; implementations of the same family
// coexist under distinct names.
func (reg *Registry) Register(family, name string, f Factory) error {
	if family == "" || name == "" || f == nil {
		return fmt.Errorf("%w: family, name and factory are all required", ErrInvalidRegistration)
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	byName := reg.families[family]
	if byName == nil {
		byName = make(map[string]Factory)
		reg.families[family] = byName
	}
	if _, exists := byName[name]; exists {
		return fmt.Errorf("%w: component %q in family %q", ErrAlreadyRegistered, name, family)
	}
	byName[name] = f
	return nil
}

// MustRegister is Register, panicking on error. For wiring built-ins in
// main, where a duplicate registration is a programming mistake.
func (reg *Registry) MustRegister(family, name string, f Factory) {
	if err := reg.Register(family, name, f); err != nil {
		panic(err)
	}
}

// RegisterDecorator adds a decorator under name.
func (reg *Registry) RegisterDecorator(name string, d Decorator) error {
	if name == "" || d == nil {
		return fmt.Errorf("%w: decorator name and func are required", ErrInvalidRegistration)
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.decorators[name]; exists {
		return fmt.Errorf("%w: decorator %q", ErrAlreadyRegistered, name)
	}
	reg.decorators[name] = d
	return nil
}

// MustRegisterDecorator is RegisterDecorator, panicking on error.
func (reg *Registry) MustRegisterDecorator(name string, d Decorator) {
	if err := reg.RegisterDecorator(name, d); err != nil {
		panic(err)
	}
}

// Component instantiates the named component in family. An empty name
// resolves through the family's "impl" configuration key, falling back
// to DefaultImplName, so callers select implementations per deployment
// without touching code.
func (reg *Registry) Component(family, name string, conf Config) (Component, error) {
	if name == "" {
		name = ConfigString(conf, familyKey(family, keyImpl), "")
		if name == "" {
			name = DefaultImplName
		}
	}
	reg.mu.RLock()
	f := reg.families[family][name]
	reg.mu.RUnlock()
	if f == nil {
		return nil, fmt.Errorf("%w: %q in family %q", ErrComponentNotFound, name, family)
	}
	return f(), nil
}

// Decorator returns the named decorator.
func (reg *Registry) Decorator(name string) (Decorator, error) {
	reg.mu.RLock()
	d := reg.decorators[name]
	reg.mu.RUnlock()
	if d == nil {
		return nil, fmt.Errorf("%w: %q", ErrDecoratorNotFound, name)
	}
	return d, nil
}

// Families returns all registered family names, sorted.
func (reg *Registry) Families() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]string, 0, len(reg.families))
	for family := range reg.families {
		out = append(out, family)
	}
	sort.Strings(out)
	return out
}

// Components returns the implementation names registered in family,
// sorted.
func (reg *Registry) Components(family string) []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	byName := reg.families[family]
	out := make([]string, 0, len(byName))
	for name := range byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Decorators returns all registered decorator names, sorted.
func (reg *Registry) Decorators() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]string, 0, len(reg.decorators))
	for name := range reg.decorators {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
