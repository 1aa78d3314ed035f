package system

import (
	"github.com/LilRicefield/saints-dragons/ecs"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

// AbilitySystem advances every entity's abilities once per tick. Cooldowns
// of idle abilities count down here too.
type AbilitySystem struct{}

func NewAbilitySystem() *AbilitySystem {
	return &AbilitySystem{}
}

func (s *AbilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AbilitiesComponent.Kind(), func(_ ecs.Entity, a *component.Abilities) {
		a.Manager.Tick()
	})
}
