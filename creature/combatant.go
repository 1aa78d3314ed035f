package creature

import (
	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/combat"
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

// TargetCreature returns the creature currently targeted, if any.
func (c *Creature) TargetCreature() *Creature {
	tg, ok := ecs.Get(c.arena.World, c.id, component.TargetingComponent.Kind())
	if !ok || tg.Target == 0 {
		return nil
	}
	t, ok := c.arena.creatures[ecs.Entity(tg.Target)]
	if !ok {
		return nil
	}
	return t
}

// SetTarget overrides the target picked by the targeting system.
func (c *Creature) SetTarget(t *Creature) {
	tg, ok := ecs.Get(c.arena.World, c.id, component.TargetingComponent.Kind())
	if !ok {
		return
	}
	if t == nil {
		tg.Target = 0
		return
	}
	tg.Target = uint64(t.id)
}

func (c *Creature) Target() combat.Combatant {
	if t := c.TargetCreature(); t != nil {
		return t
	}
	return nil
}

func (c *Creature) CanSee(o combat.Combatant) bool {
	return c.arena.LineOfSight(c.Position(), o.Position())
}

func (c *Creature) LookAt(o combat.Combatant) {
	if look, ok := ecs.Get(c.arena.World, c.id, component.LookComponent.Kind()); ok {
		look.Target = o.Position()
		look.Set = true
	}
}

// replanEvery is how many ticks a planned route is followed before it is
// planned again.
const replanEvery = 10

// MoveTo points navigation at o, stopping when the bodies touch. A
// non-positive speed uses the creature's own. When o is out of sight the
// creature follows a route around the obstacles.
func (c *Creature) MoveTo(o combat.Combatant, speed float64) {
	w := c.arena.World
	nav, ok := ecs.Get(w, c.id, component.NavigationComponent.Kind())
	if !ok || o == nil {
		return
	}
	if speed <= 0 {
		speed = c.speed
	}
	nav.Destination = o.Position()
	nav.Speed = speed
	nav.StopDistance = c.Radius() + o.Radius()
	nav.Active = true

	from := c.Position()
	switch {
	case c.arena.LineOfSight(from, nav.Destination):
		nav.Waypoints = nil
	case len(nav.Waypoints) == 0 || w.Tick()-nav.RoutedAt >= replanEvery:
		route := c.arena.Route(from, nav.Destination)
		if len(route) > 0 {
			route = route[:len(route)-1]
		}
		nav.Waypoints = route
		nav.RoutedAt = w.Tick()
	}
}

func (c *Creature) StopNavigation() {
	if nav, ok := ecs.Get(c.arena.World, c.id, component.NavigationComponent.Kind()); ok {
		nav.Active = false
		nav.Waypoints = nil
	}
}

func (c *Creature) Navigating() bool {
	nav, ok := ecs.Get(c.arena.World, c.id, component.NavigationComponent.Kind())
	return ok && nav.Active
}

// Gap is the edge-to-edge distance to o.
func (c *Creature) Gap(o combat.Combatant) float64 {
	return combat.Gap(c, o)
}

// Damage queues amount against c for the damage system. Hits in the same
// tick accumulate.
func (c *Creature) Damage(amount float64, source *Creature, knockback cp.Vector) {
	w := c.arena.World
	if !ecs.IsAlive(w, c.id) {
		return
	}
	req, ok := ecs.Get(w, c.id, component.DamageRequestComponent.Kind())
	if !ok {
		req = &component.DamageRequest{}
		if err := ecs.Add(w, c.id, component.DamageRequestComponent.Kind(), req); err != nil {
			return
		}
	}
	req.Amount += amount
	req.Hits++
	req.Knockback = req.Knockback.Add(knockback)
	if source != nil {
		req.SourceEntity = uint64(source.id)
	}
}

// KnockbackFrom returns a displacement of length strength pushing c away
// from p.
func (c *Creature) KnockbackFrom(p cp.Vector, strength float64) cp.Vector {
	dir := c.Position().Sub(p)
	if dir.LengthSq() == 0 {
		return cp.Vector{}
	}
	return dir.Normalize().Mult(strength)
}
