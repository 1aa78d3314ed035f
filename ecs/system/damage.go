package system

import (
	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
	"github.com/LilRicefield/saints-dragons/logging"
)

// DamageSystem applies queued damage. Damage interrupts abilities that
// allow it and starts the hurt reaction; lethal damage marks the entity
// dead, interrupts whatever is running and starts the death sequence.
type DamageSystem struct {
	// Terrain clips knockback against static geometry. nil applies it
	// unchecked.
	Terrain Terrain
}

// Terrain reports how far a circle can be pushed before touching an obstacle.
type Terrain interface {
	ClipMove(from, delta cp.Vector, radius float64) cp.Vector
}

func NewDamageSystem(terrain Terrain) *DamageSystem {
	return &DamageSystem{Terrain: terrain}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.DamageRequestComponent.Kind(), func(e ecs.Entity, req *component.DamageRequest) {
		ecs.Remove(w, e, component.DamageRequestComponent.Kind())
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}
		health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
		if !ok {
			return
		}

		health.Current -= req.Amount
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			tr.Position = tr.Position.Add(s.knockback(w, e, tr.Position, req.Knockback))
		}

		var (
			mgr       = managerOf(w, e)
			reactions component.Reactions
		)
		if r, ok := ecs.Get(w, e, component.ReactionsComponent.Kind()); ok {
			reactions = *r
		}

		if health.Current <= 0 {
			health.Current = 0
			_ = ecs.Add(w, e, component.DeadComponent.Kind(), &component.Dead{})
			if nav, ok := ecs.Get(w, e, component.NavigationComponent.Kind()); ok {
				nav.Active = false
			}
			logging.Entity(e).WithField("source", req.SourceEntity).Info("damage: killed")
			if mgr == nil {
				return
			}
			mgr.Interrupt()
			if reactions.Death != nil {
				mgr.TryStart(reactions.Death)
			}
			return
		}

		logging.Entity(e).WithField("amount", req.Amount).WithField("hits", req.Hits).Debug("damage: applied")
		if mgr == nil {
			return
		}
		mgr.OnDamage()
		if reactions.Hurt != nil && mgr.CanStart(reactions.Hurt) {
			mgr.TryStart(reactions.Hurt)
		}
	})
}

func (s *DamageSystem) knockback(w *ecs.World, e ecs.Entity, from, delta cp.Vector) cp.Vector {
	if s.Terrain == nil || delta.LengthSq() == 0 {
		return delta
	}
	radius := 0.0
	if b, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		radius = b.Radius
	}
	return s.Terrain.ClipMove(from, delta, radius)
}
