package system

import (
	"math"

	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

// NavigationSystem applies look requests and steps active navigation
// along its waypoints toward its destination.
type NavigationSystem struct{}

func NewNavigationSystem() *NavigationSystem {
	return &NavigationSystem{}
}

func (s *NavigationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.LookComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, look *component.Look, tr *component.Transform) {
		if !look.Set {
			return
		}
		if dir := look.Target.Sub(tr.Position); dir.LengthSq() > 0 {
			tr.Facing = dir.Normalize()
		}
		look.Set = false
	})

	ecs.ForEach2(w, component.NavigationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, nav *component.Navigation, tr *component.Transform) {
		if !nav.Active || ecs.Has(w, e, component.DeadComponent.Kind()) {
			return
		}
		budget := nav.Speed
		if budget <= 0 {
			return
		}
		for len(nav.Waypoints) > 0 && budget > 0 {
			dir := nav.Waypoints[0].Sub(tr.Position)
			dist := dir.Length()
			if dist > budget {
				tr.Position = tr.Position.Add(dir.Normalize().Mult(budget))
				return
			}
			tr.Position = nav.Waypoints[0]
			budget -= dist
			nav.Waypoints = nav.Waypoints[1:]
		}

		dir := nav.Destination.Sub(tr.Position)
		remaining := dir.Length() - nav.StopDistance
		if remaining <= 0 || budget <= 0 {
			return
		}
		step := math.Min(budget, remaining)
		tr.Position = tr.Position.Add(dir.Normalize().Mult(step))
	})
}
