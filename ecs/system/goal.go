package system

import (
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

// GoalSystem ticks every entity's goal selector.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.GoalsComponent.Kind(), func(e ecs.Entity, g *component.Goals) {
		if g.Selector == nil || ecs.Has(w, e, component.InertComponent.Kind()) {
			return
		}
		g.Selector.Tick()
	})
}
