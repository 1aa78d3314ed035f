package ability

import (
	"fmt"
	"sync"
)

// Registry is an append-only table of ability types. It is filled during
// startup and frozen before the first simulation tick.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]*Type
	frozen bool
}

func NewRegistry() *Registry {
	return &Registry{types: map[string]*Type{}}
}

// Register adds t. Duplicate names and registration after Freeze are rejected.
func (r *Registry) Register(t *Type) error {
	if t == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register %q", ErrRegistryFrozen, t.name)
	}
	if _, ok := r.types[t.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateType, t.name)
	}
	r.types[t.name] = t
	return nil
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

func (r *Registry) Lookup(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[name]
	return t, ok
}

// All returns every registered type sorted by name.
func (r *Registry) All() []*Type {
	r.mu.RLock()
	out := make([]*Type, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	r.mu.RUnlock()
	SortTypes(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Default is the process-wide registry species packages register into from
// their init functions.
var Default = NewRegistry()

func Register(t *Type) error { return Default.Register(t) }

// MustRegister registers t with Default and panics on failure. A failure here is
// a programming error in a species module.
func MustRegister(t *Type) *Type {
	if err := Default.Register(t); err != nil {
		panic(err)
	}
	return t
}

func Lookup(name string) (*Type, bool) { return Default.Lookup(name) }

func All() []*Type { return Default.All() }

func Freeze() { Default.Freeze() }
