package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/LilRicefield/saints-dragons/ability"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SpeciesSpec is the tuning file for one creature species.
type SpeciesSpec struct {
	Name         string                 `yaml:"name"`
	Health       float64                `yaml:"health"`
	Radius       float64                `yaml:"radius"`
	MoveSpeed    float64                `yaml:"move_speed"`
	AcquireRange float64                `yaml:"acquire_range"`
	LoseRange    float64                `yaml:"lose_range"`
	PhaseTwoAt   float64                `yaml:"phase_two_at"`
	Combat       CombatSpec             `yaml:"combat"`
	Abilities    map[string]AbilitySpec `yaml:"abilities"`
}

type CombatSpec struct {
	MinAttackCooldown int        `yaml:"min_attack_cooldown"`
	Bands             []BandSpec `yaml:"bands"`
}

type BandSpec struct {
	Name  string  `yaml:"name"`
	Reach float64 `yaml:"reach"`
}

type AbilitySpec struct {
	Cooldown int            `yaml:"cooldown"`
	Script   string         `yaml:"script"`
	Track    []SectionSpec  `yaml:"track"`
	Params   map[string]any `yaml:"params"`
}

type SectionSpec struct {
	Phase string `yaml:"phase"`
	Kind  string `yaml:"kind"`
	Ticks int    `yaml:"ticks"`
}

func (s SectionSpec) Section() (ability.Section, error) {
	phase, err := ability.ParsePhase(s.Phase)
	if err != nil {
		return ability.Section{}, err
	}
	kind, err := ability.ParseKind(s.Kind)
	if err != nil {
		return ability.Section{}, err
	}
	return ability.Section{Phase: phase, Kind: kind, Ticks: s.Ticks}, nil
}

// BuildTrack converts the YAML sections into a validated track.
func (a AbilitySpec) BuildTrack() (ability.Track, error) {
	sections := make([]ability.Section, 0, len(a.Track))
	for i, s := range a.Track {
		sec, err := s.Section()
		if err != nil {
			return ability.Track{}, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, sec)
	}
	return ability.NewTrack(sections...)
}

// Ability returns the named ability tuning.
func (s *SpeciesSpec) Ability(name string) (AbilitySpec, bool) {
	if s == nil {
		return AbilitySpec{}, false
	}
	a, ok := s.Abilities[name]
	return a, ok
}

// Validate reports every problem in the file at once.
func (s *SpeciesSpec) Validate(required ...string) error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is empty"))
	}
	if s.Health <= 0 {
		errs = append(errs, fmt.Errorf("health must be positive, got %v", s.Health))
	}
	if s.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %v", s.Radius))
	}
	if s.PhaseTwoAt < 0 || s.PhaseTwoAt > 1 {
		errs = append(errs, fmt.Errorf("phase_two_at must be within [0,1], got %v", s.PhaseTwoAt))
	}
	prev := 0.0
	for _, b := range s.Combat.Bands {
		if b.Reach <= prev {
			errs = append(errs, fmt.Errorf("band %q reach %v must exceed %v", b.Name, b.Reach, prev))
		}
		prev = b.Reach
	}
	for _, name := range required {
		a, ok := s.Abilities[name]
		if !ok {
			errs = append(errs, fmt.Errorf("ability %q missing", name))
			continue
		}
		if a.Cooldown < 0 {
			errs = append(errs, fmt.Errorf("ability %q: negative cooldown", name))
		}
		if _, err := a.BuildTrack(); err != nil {
			errs = append(errs, fmt.Errorf("ability %q: %w", name, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("prefabs: species %q: %w", s.Name, errors.Join(errs...))
}

// LoadSpecies loads and validates a species file.
func LoadSpecies(filename string, required ...string) (*SpeciesSpec, error) {
	spec, err := LoadSpec[SpeciesSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(required...); err != nil {
		return nil, err
	}
	return &spec, nil
}
