package system

import (
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

// TargetingSystem drops targets that died, vanished or ran out of range,
// and picks the nearest living entity of another faction for entities
// without one.
type TargetingSystem struct{}

func NewTargetingSystem() *TargetingSystem {
	return &TargetingSystem{}
}

func (s *TargetingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TargetingComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, tg *component.Targeting, tr *component.Transform) {
		if ecs.Has(w, e, component.DeadComponent.Kind()) {
			tg.Target = 0
			return
		}
		if tg.Target != 0 && !keepTarget(w, ecs.Entity(tg.Target), tr, tg.LoseRange) {
			tg.Target = 0
		}
		if tg.Target == 0 {
			if found, ok := nearestFoe(w, e, tr, tg.AcquireRange); ok {
				tg.Target = uint64(found)
			}
		}
	})
}

func targetable(w *ecs.World, e ecs.Entity) bool {
	if !ecs.IsAlive(w, e) || ecs.Has(w, e, component.DeadComponent.Kind()) {
		return false
	}
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	return ok && h.Current > 0
}

func keepTarget(w *ecs.World, target ecs.Entity, self *component.Transform, loseRange float64) bool {
	if !targetable(w, target) {
		return false
	}
	tr, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	return loseRange <= 0 || self.Position.Distance(tr.Position) <= loseRange
}

func factionOf(w *ecs.World, e ecs.Entity) string {
	if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
		return f.Name
	}
	return ""
}

func nearestFoe(w *ecs.World, self ecs.Entity, tr *component.Transform, acquireRange float64) (ecs.Entity, bool) {
	faction := factionOf(w, self)
	var (
		best     ecs.Entity
		bestDist float64
		found    bool
	)
	ecs.ForEach2(w, component.HealthComponent.Kind(), component.TransformComponent.Kind(), func(o ecs.Entity, _ *component.Health, otr *component.Transform) {
		if o == self || !targetable(w, o) {
			return
		}
		if faction != "" && factionOf(w, o) == faction {
			return
		}
		d := tr.Position.Distance(otr.Position)
		if acquireRange > 0 && d > acquireRange {
			return
		}
		if !found || d < bestDist {
			best, bestDist, found = o, d, true
		}
	})
	return best, found
}
