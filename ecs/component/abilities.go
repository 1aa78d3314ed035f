package component

import "github.com/LilRicefield/saints-dragons/ability"

// AbilitySlot holds the single non-overlay ability an entity is running.
type AbilitySlot struct {
	Active *ability.Ability
}

var AbilitySlotComponent = NewComponent[AbilitySlot]()

// Abilities owns the entity's ability manager.
type Abilities struct {
	Manager *ability.Manager
}

var AbilitiesComponent = NewComponent[Abilities]()

// Reactions names the abilities the damage system starts on hurt and death.
type Reactions struct {
	Hurt  *ability.Type
	Death *ability.Type
}

var ReactionsComponent = NewComponent[Reactions]()
