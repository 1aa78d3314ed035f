package species

import (
	"fmt"
	"sync/atomic"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/ability/script"
	"github.com/LilRicefield/saints-dragons/prefabs"
)

type snapshot struct {
	spec   *prefabs.SpeciesSpec
	tracks map[string]ability.Track
}

// Tuning holds the live prefab values of a species. Load swaps them
// atomically; abilities read them when they are built, so a reload takes
// effect on the next activation.
type Tuning struct {
	file     string
	required []string
	cur      atomic.Pointer[snapshot]
}

func NewTuning(file string, required ...string) *Tuning {
	return &Tuning{file: file, required: required}
}

func (t *Tuning) File() string { return t.file }

// Load reads and validates the file. On error the previous values stay.
func (t *Tuning) Load() error {
	spec, err := prefabs.LoadSpecies(t.file, t.required...)
	if err != nil {
		return err
	}
	snap := &snapshot{spec: spec, tracks: make(map[string]ability.Track, len(spec.Abilities))}
	for name, a := range spec.Abilities {
		track, err := a.BuildTrack()
		if err != nil {
			return fmt.Errorf("species: %s: ability %s: %w", t.file, name, err)
		}
		snap.tracks[name] = track
	}
	t.cur.Store(snap)
	return nil
}

func (t *Tuning) snapshot() (*snapshot, error) {
	if s := t.cur.Load(); s != nil {
		return s, nil
	}
	if err := t.Load(); err != nil {
		return nil, err
	}
	return t.cur.Load(), nil
}

// Spec returns the current values, loading them on first use.
func (t *Tuning) Spec() (*prefabs.SpeciesSpec, error) {
	s, err := t.snapshot()
	if err != nil {
		return nil, err
	}
	return s.spec, nil
}

// Build creates an instance of typ with its tuned track and cooldown.
func (t *Tuning) Build(typ *ability.Type, user ability.Host, b ability.Behavior) (*ability.Ability, error) {
	s, err := t.snapshot()
	if err != nil {
		return nil, err
	}
	spec, ok := s.spec.Ability(typ.Name())
	if !ok {
		return nil, fmt.Errorf("species: %s has no tuning for %s", t.file, typ.Name())
	}
	return ability.New(typ, user, s.tracks[typ.Name()], spec.Cooldown, b)
}

// Params decodes the params block of the named ability into P.
func Params[P any](t *Tuning, name string) (P, error) {
	var zero P
	spec, err := t.Spec()
	if err != nil {
		return zero, err
	}
	a, ok := spec.Ability(name)
	if !ok {
		return zero, fmt.Errorf("species: %s has no tuning for %s", t.file, name)
	}
	return prefabs.DecodeParams[P](a.Params)
}

// Script holds a compiled ability script that reloads can swap.
type Script struct {
	name string
	cur  atomic.Pointer[script.Program]
}

func NewScript(name string) *Script {
	return &Script{name: name}
}

func (s *Script) Load() error {
	p, err := script.Load(s.name)
	if err != nil {
		return err
	}
	s.cur.Store(p)
	return nil
}

// Program returns the compiled script, loading it on first use.
func (s *Script) Program() (*script.Program, error) {
	if p := s.cur.Load(); p != nil {
		return p, nil
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s.cur.Load(), nil
}
