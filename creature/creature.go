package creature

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/combat"
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
	"github.com/LilRicefield/saints-dragons/goal"
	"github.com/LilRicefield/saints-dragons/logging"
)

var (
	_ ability.Host         = (*Creature)(nil)
	_ ability.SoundEmitter = (*Creature)(nil)
	_ ability.Living       = (*Creature)(nil)
	_ combat.Combatant     = (*Creature)(nil)
)

// Spec describes a creature to spawn.
type Spec struct {
	Species  string
	Faction  string
	Position cp.Vector
	Radius   float64
	Health   float64
	Speed    float64
	// AcquireRange and LoseRange bound target selection; zero means
	// unlimited.
	AcquireRange float64
	LoseRange    float64
	// PhaseTwoAt is the health fraction at or below which the creature
	// fights in its second phase. Zero disables phase two.
	PhaseTwoAt float64
	Abilities  []*ability.Type
	Hurt       *ability.Type
	Death      *ability.Type
}

func (s Spec) validate() error {
	var errs []error
	if s.Species == "" {
		errs = append(errs, errors.New("species is empty"))
	}
	if s.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius %v must be positive", s.Radius))
	}
	if s.Health <= 0 {
		errs = append(errs, fmt.Errorf("health %v must be positive", s.Health))
	}
	for _, t := range []*ability.Type{s.Hurt, s.Death} {
		if t == nil {
			continue
		}
		known := false
		for _, k := range s.Abilities {
			known = known || k == t
		}
		if !known {
			errs = append(errs, fmt.Errorf("reaction %s is not one of the creature's abilities", t.Name()))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("creature: spawn %q: %w", s.Species, errors.Join(errs...))
}

// Creature is one entity in the arena. It hosts abilities and exposes the
// view the combat goals need.
type Creature struct {
	arena      *Arena
	id         ecs.Entity
	species    string
	speed      float64
	phaseTwoAt float64
	types      []*ability.Type
	manager    *ability.Manager
	goals      *goal.Selector
	flags      map[string]bool
}

// Spawn creates a creature and its components.
func (a *Arena) Spawn(spec Spec) (*Creature, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	w := a.World
	e := ecs.CreateEntity(w)
	c := &Creature{
		arena:      a,
		id:         e,
		species:    spec.Species,
		speed:      spec.Speed,
		phaseTwoAt: spec.PhaseTwoAt,
		types:      append([]*ability.Type(nil), spec.Abilities...),
		goals:      goal.NewSelector(),
		flags:      map[string]bool{},
	}
	c.manager = ability.NewManager(c)

	err := errors.Join(
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: spec.Position, Facing: cp.Vector{X: 1}}),
		ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Radius: spec.Radius}),
		ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}),
		ecs.Add(w, e, component.NavigationComponent.Kind(), &component.Navigation{Speed: spec.Speed}),
		ecs.Add(w, e, component.LookComponent.Kind(), &component.Look{}),
		ecs.Add(w, e, component.FactionComponent.Kind(), &component.Faction{Name: spec.Faction}),
		ecs.Add(w, e, component.TargetingComponent.Kind(), &component.Targeting{AcquireRange: spec.AcquireRange, LoseRange: spec.LoseRange}),
		ecs.Add(w, e, component.AbilitySlotComponent.Kind(), &component.AbilitySlot{}),
		ecs.Add(w, e, component.AbilitiesComponent.Kind(), &component.Abilities{Manager: c.manager}),
		ecs.Add(w, e, component.GoalsComponent.Kind(), &component.Goals{Selector: c.goals}),
		ecs.Add(w, e, component.ReactionsComponent.Kind(), &component.Reactions{Hurt: spec.Hurt, Death: spec.Death}),
	)
	if err != nil {
		ecs.DestroyEntity(w, e)
		return nil, fmt.Errorf("creature: spawn %q: %w", spec.Species, err)
	}

	a.creatures[e] = c
	logging.Entity(e).WithField("species", spec.Species).WithField("faction", spec.Faction).Info("creature: spawned")
	return c, nil
}

func (c *Creature) ID() ecs.Entity                   { return c.id }
func (c *Creature) Species() string                  { return c.species }
func (c *Creature) Arena() *Arena                    { return c.arena }
func (c *Creature) Goals() *goal.Selector            { return c.goals }
func (c *Creature) AbilityManager() *ability.Manager { return c.manager }
func (c *Creature) Abilities() []*ability.Type       { return slices.Clone(c.types) }
func (c *Creature) Flag(name string) bool            { return c.flags[name] }
func (c *Creature) SetFlag(name string, on bool)     { c.flags[name] = on }

func (c *Creature) String() string {
	return c.species + "#" + c.id.String()
}

func (c *Creature) transform() *component.Transform {
	tr, _ := ecs.Get(c.arena.World, c.id, component.TransformComponent.Kind())
	if tr == nil {
		return &component.Transform{}
	}
	return tr
}

func (c *Creature) Position() cp.Vector { return c.transform().Position }
func (c *Creature) Facing() cp.Vector   { return c.transform().Facing }

func (c *Creature) Radius() float64 {
	if b, ok := ecs.Get(c.arena.World, c.id, component.BodyComponent.Kind()); ok {
		return b.Radius
	}
	return 0
}

func (c *Creature) Health() component.Health {
	if h, ok := ecs.Get(c.arena.World, c.id, component.HealthComponent.Kind()); ok {
		return *h
	}
	return component.Health{}
}

func (c *Creature) Dead() bool {
	return !ecs.IsAlive(c.arena.World, c.id) || ecs.Has(c.arena.World, c.id, component.DeadComponent.Kind())
}

// Inert reports whether the creature's death sequence has finished.
func (c *Creature) Inert() bool {
	return ecs.Has(c.arena.World, c.id, component.InertComponent.Kind())
}

func (c *Creature) Alive() bool {
	return !c.Dead() && c.Health().Current > 0
}

// InPhaseTwo reports whether health has dropped to the phase-two threshold.
func (c *Creature) InPhaseTwo() bool {
	return c.phaseTwoAt > 0 && c.Alive() && c.Health().Fraction() <= c.phaseTwoAt
}

// MarkInert stops the creature thinking once its death sequence ends.
func (c *Creature) MarkInert() {
	c.goals.StopAll()
	c.StopNavigation()
	_ = ecs.Add(c.arena.World, c.id, component.InertComponent.Kind(), &component.Inert{})
	logging.Entity(c.id).WithField("species", c.species).Info("creature: inert")
}

func (c *Creature) ActiveAbility() *ability.Ability {
	if s, ok := ecs.Get(c.arena.World, c.id, component.AbilitySlotComponent.Kind()); ok {
		return s.Active
	}
	return nil
}

func (c *Creature) SetActiveAbility(a *ability.Ability) {
	if s, ok := ecs.Get(c.arena.World, c.id, component.AbilitySlotComponent.Kind()); ok {
		s.Active = a
	}
}

func (c *Creature) PlayAnimation(anim ability.Animation) {
	c.arena.sink.TriggerAnimation(c.id, anim)
}

func (c *Creature) PlaySound(s ability.Sound) {
	c.arena.sink.PlaySound(c.id, s, c.Position())
}
