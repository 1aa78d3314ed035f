// Package creature ties abilities, goals and the ECS world together into
// creatures fighting inside a walled arena.
package creature

import (
	"math/rand"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/system"
	"github.com/LilRicefield/saints-dragons/nav"
)

// Arena owns the ECS world and the static geometry used for line of sight.
type Arena struct {
	World *ecs.World

	space     *cp.Space
	sink      Sink
	creatures map[ecs.Entity]*Creature
	rng       *rand.Rand

	navBounds    cp.BB
	navCell      float64
	navClearance float64
	grid         *nav.Grid
}

func NewArena(seed int64) *Arena {
	w := ecs.NewWorld()
	a := &Arena{
		World:     w,
		space:     cp.NewSpace(),
		sink:      EventSink{World: w},
		creatures: map[ecs.Entity]*Creature{},
		rng:       rand.New(rand.NewSource(seed)),
	}
	for _, s := range system.Pipeline(a) {
		w.AddSystem(s)
	}
	return a
}

// SetSink replaces the presentation sink. nil restores the event queue sink.
func (a *Arena) SetSink(s Sink) {
	if s == nil {
		s = EventSink{World: a.World}
	}
	a.sink = s
}

// Rand is the arena's seeded random source. Everything random in a run
// draws from it so runs replay exactly.
func (a *Arena) Rand() *rand.Rand { return a.rng }

// AddWall adds a static segment that blocks sight.
func (a *Arena) AddWall(from, to cp.Vector, thickness float64) {
	a.space.AddShape(cp.NewSegment(a.space.StaticBody, from, to, thickness/2))
	a.grid = nil
}

// AddPillar adds a static axis-aligned box that blocks sight.
func (a *Arena) AddPillar(center cp.Vector, width, height float64) {
	bb := cp.NewBBForExtents(center, width/2, height/2)
	a.space.AddShape(cp.NewBox2(a.space.StaticBody, bb, 0))
	a.grid = nil
}

// SetNavBounds enables route planning inside bounds. Cells closer than
// clearance to an obstacle are treated as blocked.
func (a *Arena) SetNavBounds(bounds cp.BB, cellSize, clearance float64) {
	a.navBounds = bounds
	a.navCell = cellSize
	a.navClearance = clearance
	a.grid = nil
}

func (a *Arena) navGrid() *nav.Grid {
	if a.grid == nil && a.navCell > 0 {
		a.grid = nav.NewGrid(a.navBounds, a.navCell, func(p cp.Vector) bool {
			return a.space.PointQueryNearest(p, a.navClearance, cp.SHAPE_FILTER_ALL).Shape != nil
		})
	}
	return a.grid
}

// Route returns waypoints from 'from' to 'to' that keep clear of obstacles.
// With nothing in the way, or no nav bounds set, the route is just 'to'.
// It returns nil when no route exists.
func (a *Arena) Route(from, to cp.Vector) []cp.Vector {
	if a.LineOfSight(from, to) {
		return []cp.Vector{to}
	}
	g := a.navGrid()
	if g == nil {
		return []cp.Vector{to}
	}
	path := g.Path(from, to)
	if path == nil {
		return nil
	}
	return nav.Smooth(from, path, a.LineOfSight)
}

// LineOfSight reports whether the segment from-to misses every wall.
func (a *Arena) LineOfSight(from, to cp.Vector) bool {
	info := a.space.SegmentQueryFirst(from, to, 0, cp.SHAPE_FILTER_ALL)
	return info.Shape == nil
}

// ClipMove shortens delta so a circle of radius at from stops where it would
// first touch a wall or pillar. Moving away from a touching obstacle is not
// clipped.
func (a *Arena) ClipMove(from, delta cp.Vector, radius float64) cp.Vector {
	info := a.space.SegmentQueryFirst(from, from.Add(delta), radius, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil || info.Normal.Dot(delta) >= 0 {
		return delta
	}
	alpha := info.Alpha - clipMargin/delta.Length()
	if alpha <= 0 {
		return cp.Vector{}
	}
	return delta.Mult(alpha)
}

// clipMargin keeps clipped creatures a hair off the obstacle surface.
const clipMargin = 0.01

// Step advances the world one tick and returns the presentation events
// queued since the previous drain.
func (a *Arena) Step() []ecs.Event {
	a.World.Update()
	return a.World.Events().Drain()
}

func (a *Arena) Creature(e ecs.Entity) (*Creature, bool) {
	c, ok := a.creatures[e]
	return c, ok
}

// Creatures returns every spawned creature in entity order.
func (a *Arena) Creatures() []*Creature {
	out := make([]*Creature, 0, len(a.creatures))
	for _, c := range a.creatures {
		out = append(out, c)
	}
	slices.SortFunc(out, func(x, y *Creature) int {
		return int(uint32(x.id)) - int(uint32(y.id))
	})
	return out
}

// Despawn removes c from the arena and the world.
func (a *Arena) Despawn(c *Creature) {
	if c == nil {
		return
	}
	c.manager.Interrupt()
	c.goals.StopAll()
	delete(a.creatures, c.id)
	ecs.DestroyEntity(a.World, c.id)
}
