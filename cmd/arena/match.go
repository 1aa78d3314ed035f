package main

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/creature"
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/logging"
	"github.com/LilRicefield/saints-dragons/species"
)

// side is one team in the match.
type side struct {
	faction string
	fighter *creature.Creature
}

type match struct {
	arena    *creature.Arena
	sides    []side
	maxTicks int
}

type entry struct {
	species string
	faction string
	pos     cp.Vector
}

var lineup = []entry{
	{species: "lightning_dragon", faction: "storm", pos: cp.Vector{X: -12}},
	{species: "wyvern", faction: "wild", pos: cp.Vector{X: 12}},
}

// newMatch builds the arena: a walled pit with two pillars, the lineup
// spawned at either end. l, when set, is attached to every fighter.
func newMatch(seed int64, maxTicks int, l ability.Listener) (*match, error) {
	a := creature.NewArena(seed)
	a.AddWall(cp.Vector{X: -30, Y: -15}, cp.Vector{X: 30, Y: -15}, 1)
	a.AddWall(cp.Vector{X: -30, Y: 15}, cp.Vector{X: 30, Y: 15}, 1)
	a.AddWall(cp.Vector{X: -30, Y: -15}, cp.Vector{X: -30, Y: 15}, 1)
	a.AddWall(cp.Vector{X: 30, Y: -15}, cp.Vector{X: 30, Y: 15}, 1)
	a.AddPillar(cp.Vector{Y: 8}, 3, 3)
	a.AddPillar(cp.Vector{Y: -8}, 3, 3)
	a.SetNavBounds(cp.BB{L: -30, B: -15, R: 30, T: 15}, 1, 2)

	m := &match{arena: a, maxTicks: maxTicks}
	var errs []error
	for _, e := range lineup {
		def, ok := species.Lookup(e.species)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown species %q", e.species))
			continue
		}
		c, err := def.Spawn(a, e.pos, e.faction)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if l != nil {
			c.AbilityManager().SetListener(l)
		}
		m.sides = append(m.sides, side{faction: e.faction, fighter: c})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// step runs one tick and reports whether the match is over.
func (m *match) step() bool {
	for _, ev := range m.arena.Step() {
		logEvent(ev)
	}
	if m.maxTicks > 0 && int(m.arena.World.Tick()) >= m.maxTicks {
		return true
	}
	return len(m.standing()) <= 1
}

// standing returns the sides whose fighter has not gone inert.
func (m *match) standing() []side {
	var out []side
	for _, s := range m.sides {
		if !s.fighter.Inert() {
			out = append(out, s)
		}
	}
	return out
}

func (m *match) summary() logrus.Fields {
	fields := logrus.Fields{"ticks": m.arena.World.Tick()}
	for _, s := range m.sides {
		fields[s.fighter.Species()] = fmt.Sprintf("%.0f/%.0f", s.fighter.Health().Current, s.fighter.Health().Max)
	}
	if st := m.standing(); len(st) == 1 {
		fields["winner"] = st[0].faction
	}
	return fields
}

func logEvent(e ecs.Event) {
	switch ev := e.Data.(type) {
	case creature.AnimationEvent:
		logging.Entity(ev.Entity).WithField("tick", e.Tick).WithField("controller", ev.Animation.Controller).WithField("clip", ev.Animation.Clip).Debug("arena: animation")
	case creature.SoundEvent:
		logging.Entity(ev.Entity).WithField("tick", e.Tick).WithField("sound", ev.Sound.Name).WithField("at", ev.At).Debug("arena: sound")
	}
}
