// Package wyvern defines the wyvern, a small melee flier.
package wyvern

import (
	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/combat"
	"github.com/LilRicefield/saints-dragons/creature"
	"github.com/LilRicefield/saints-dragons/species"
)

const (
	Name = "wyvern"

	BiteName = "wyvern_bite"
	HurtName = "wyvern_hurt"
	DieName  = "wyvern_die"
)

var tuning = species.NewTuning(Name+".yaml", BiteName, HurtName, DieName)

var (
	Bite = ability.MustRegister(ability.MustType(BiteName, newBite))
	Hurt = ability.MustRegister(ability.MustType(HurtName, newHurt))
	Die  = ability.MustRegister(ability.MustType(DieName, newDie))
)

func newBite(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	p, err := species.Params[species.StrikeParams](tuning, BiteName)
	if err != nil {
		return nil, err
	}
	return tuning.Build(t, user, &species.Strike{Clip: "bite", Sound: "wyvern_bite", Params: p})
}

func newHurt(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	return tuning.Build(t, user, species.Flinch{Clip: "hurt"})
}

func newDie(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	return tuning.Build(t, user, species.Death{Clip: "death", Sound: "wyvern_death"})
}

func init() {
	species.Define(species.Definition{
		Name:   Name,
		Prefab: tuning.File(),
		Reload: tuning.Load,
		Spawn:  Spawn,
	})
}

func Spawn(a *creature.Arena, pos cp.Vector, faction string) (*creature.Creature, error) {
	return species.SpawnMelee(a, tuning, species.Kit{
		Abilities: []*ability.Type{Bite, Hurt, Die},
		Hurt:      Hurt,
		Death:     Die,
		Choosers:  map[string]combat.Chooser{"bite": combat.Fixed(Bite)},
	}, pos, faction)
}
