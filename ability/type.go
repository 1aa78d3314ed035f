package ability

import (
	"fmt"
	"slices"
	"strings"
)

// Factory builds a fresh instance of t for user.
type Factory func(t *Type, user Host) (*Ability, error)

// Type binds a globally unique name to the factory that builds its instances.
type Type struct {
	name    string
	factory Factory
}

func NewType(name string, factory Factory) (*Type, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if factory == nil {
		return nil, fmt.Errorf("%w for %q", ErrNilFactory, name)
	}
	return &Type{name: name, factory: factory}, nil
}

func MustType(name string, factory Factory) *Type {
	t, err := NewType(name, factory)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Type) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

func (t *Type) String() string { return t.Name() }

// New builds an instance for user. The instance is idle until Start.
func (t *Type) New(user Host) (*Ability, error) {
	if t == nil {
		return nil, ErrNilFactory
	}
	a, err := t.factory(t, user)
	if err != nil {
		return nil, fmt.Errorf("ability: build %s: %w", t.name, err)
	}
	return a, nil
}

// Compare orders types by name.
func (t *Type) Compare(other *Type) int {
	return strings.Compare(t.Name(), other.Name())
}

// SortTypes sorts in place by name so enumeration is deterministic.
func SortTypes(types []*Type) {
	slices.SortFunc(types, func(a, b *Type) int { return a.Compare(b) })
}
