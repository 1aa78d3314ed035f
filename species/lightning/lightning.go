// Package lightning defines the lightning dragon.
package lightning

import (
	"errors"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/combat"
	"github.com/LilRicefield/saints-dragons/creature"
	"github.com/LilRicefield/saints-dragons/species"
)

const (
	Name = "lightning_dragon"

	BiteName        = "lightning_dragon_bite"
	HornGoreName    = "lightning_dragon_horn_gore"
	RoarName        = "lightning_dragon_roar"
	HurtName        = "lightning_dragon_hurt"
	DieName         = "lightning_dragon_die"
	SuperchargeName = "lightning_dragon_supercharge"
)

var (
	tuning = species.NewTuning(Name+".yaml", BiteName, HornGoreName, RoarName, HurtName, DieName, SuperchargeName)
	roar   = species.NewScript("roar.tengo")
)

var (
	Bite        = ability.MustRegister(ability.MustType(BiteName, newStrike("bite", BiteName, "lightning_dragon_bite")))
	HornGore    = ability.MustRegister(ability.MustType(HornGoreName, newStrike("horn_gore", HornGoreName, "lightning_dragon_gore")))
	Roar        = ability.MustRegister(ability.MustType(RoarName, newRoar))
	Hurt        = ability.MustRegister(ability.MustType(HurtName, newHurt))
	Die         = ability.MustRegister(ability.MustType(DieName, newDie))
	Supercharge = ability.MustRegister(ability.MustType(SuperchargeName, newSupercharge))
)

func newStrike(clip, name, sound string) ability.Factory {
	return func(t *ability.Type, user ability.Host) (*ability.Ability, error) {
		p, err := species.Params[species.StrikeParams](tuning, name)
		if err != nil {
			return nil, err
		}
		return tuning.Build(t, user, &species.Strike{Clip: clip, Sound: sound, Params: p})
	}
}

func newRoar(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	prog, err := roar.Program()
	if err != nil {
		return nil, err
	}
	return tuning.Build(t, user, prog.Wrap(ability.Hooks{}))
}

func newHurt(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	return tuning.Build(t, user, species.Flinch{Clip: "hurt", Sound: "lightning_dragon_hurt"})
}

func newDie(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	return tuning.Build(t, user, species.Death{Clip: "death", Sound: "lightning_dragon_death"})
}

func newSupercharge(t *ability.Type, user ability.Host) (*ability.Ability, error) {
	return tuning.Build(t, user, species.Supercharge{Clip: "supercharge"})
}

func init() {
	species.Define(species.Definition{
		Name:    Name,
		Prefab:  tuning.File(),
		Scripts: []string{"roar.tengo"},
		Reload:  Reload,
		Spawn:   Spawn,
	})
}

// Reload rereads the tuning file and the roar script.
func Reload() error {
	return errors.Join(tuning.Load(), roar.Load())
}

// Spawn fields a lightning dragon at pos.
func Spawn(a *creature.Arena, pos cp.Vector, faction string) (*creature.Creature, error) {
	either := combat.Random(Bite, HornGore)
	return species.SpawnMelee(a, tuning, species.Kit{
		Abilities: []*ability.Type{Bite, HornGore, Roar, Hurt, Die, Supercharge},
		Hurt:      Hurt,
		Death:     Die,
		Choosers: map[string]combat.Chooser{
			"bite":      combat.ByPhase(combat.Fixed(Bite), either),
			"horn_gore": combat.ByPhase(combat.Fixed(HornGore), either),
		},
		Openers: []*ability.Type{Supercharge, Roar},
	}, pos, faction)
}
