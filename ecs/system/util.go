package system

import (
	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

func managerOf(w *ecs.World, e ecs.Entity) *ability.Manager {
	if a, ok := ecs.Get(w, e, component.AbilitiesComponent.Kind()); ok {
		return a.Manager
	}
	return nil
}

// Pipeline returns the per-tick system order: target selection, goals,
// abilities, movement, then damage. terrain may be nil.
func Pipeline(terrain Terrain) []ecs.System {
	return []ecs.System{
		NewTargetingSystem(),
		NewGoalSystem(),
		NewAbilitySystem(),
		NewNavigationSystem(),
		NewDamageSystem(terrain),
	}
}
