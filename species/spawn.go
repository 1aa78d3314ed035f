package species

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/combat"
	"github.com/LilRicefield/saints-dragons/creature"
)

// Kit is what a melee species brings to Spawn besides its tuning.
type Kit struct {
	Abilities []*ability.Type
	Hurt      *ability.Type
	Death     *ability.Type
	// Choosers maps tuned band names to the attack choice for that band.
	Choosers map[string]combat.Chooser
	Openers  []*ability.Type
}

const (
	PriorityMelee = 1
	PriorityLock  = 2
)

// SpawnMelee spawns a creature from t and k and gives it the melee and
// movement lock goals.
func SpawnMelee(a *creature.Arena, t *Tuning, k Kit, pos cp.Vector, faction string) (*creature.Creature, error) {
	spec, err := t.Spec()
	if err != nil {
		return nil, err
	}

	bands := make([]combat.Band, 0, len(spec.Combat.Bands))
	var errs []error
	for _, b := range spec.Combat.Bands {
		choose, ok := k.Choosers[b.Name]
		if !ok {
			errs = append(errs, fmt.Errorf("species: %s: unknown band %q", spec.Name, b.Name))
			continue
		}
		bands = append(bands, combat.Band{Name: b.Name, Reach: b.Reach, Choose: choose})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	c, err := a.Spawn(creature.Spec{
		Species:      spec.Name,
		Faction:      faction,
		Position:     pos,
		Radius:       spec.Radius,
		Health:       spec.Health,
		Speed:        spec.MoveSpeed,
		AcquireRange: spec.AcquireRange,
		LoseRange:    spec.LoseRange,
		PhaseTwoAt:   spec.PhaseTwoAt,
		Abilities:    k.Abilities,
		Hurt:         k.Hurt,
		Death:        k.Death,
	})
	if err != nil {
		return nil, err
	}

	melee, err := combat.NewMeleeGoal(c, combat.MeleeConfig{
		Bands:             bands,
		MinAttackCooldown: spec.Combat.MinAttackCooldown,
		Speed:             spec.MoveSpeed,
		PhaseTwoOpeners:   k.Openers,
		Rand:              a.Rand(),
	})
	if err != nil {
		a.Despawn(c)
		return nil, fmt.Errorf("species: %s: %w", spec.Name, err)
	}
	c.Goals().Add(PriorityMelee, melee)
	c.Goals().Add(PriorityLock, combat.NewMovementLockGoal(c))
	return c, nil
}
