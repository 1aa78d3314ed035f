package species

import (
	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/creature"
)

// StrikeParams is the params block of a melee attack.
type StrikeParams struct {
	Damage             float64 `yaml:"damage"`
	SuperchargedDamage float64 `yaml:"supercharged_damage"`
	Reach              float64 `yaml:"reach"`
	Knockback          float64 `yaml:"knockback"`
}

// FlagSupercharged is the creature flag that swaps strikes to their
// supercharged damage.
const FlagSupercharged = "supercharged"

// Strike is a melee attack: windup at STARTUP, the hit lands when ACTIVE
// begins if the target is still in reach and in sight, then recovery.
type Strike struct {
	ability.Hooks
	Clip   string
	Sound  string
	Params StrikeParams
}

func (s *Strike) IsAttack() bool { return true }

func (s *Strike) BeginSection(a *ability.Ability, sec ability.Section) {
	self, ok := a.User().(*creature.Creature)
	if !ok {
		return
	}
	switch sec.Phase {
	case ability.Startup:
		self.PlayAnimation(ability.Animation{Controller: "body", Clip: s.Clip + "_windup"})
	case ability.Active:
		self.PlayAnimation(ability.Animation{Controller: "body", Clip: s.Clip})
		s.hit(self)
	case ability.Recovery:
		self.PlayAnimation(ability.Animation{Controller: "body", Clip: s.Clip + "_recover"})
	}
}

func (s *Strike) damage(self *creature.Creature) float64 {
	if self.Flag(FlagSupercharged) && s.Params.SuperchargedDamage > 0 {
		return s.Params.SuperchargedDamage
	}
	return s.Params.Damage
}

func (s *Strike) hit(self *creature.Creature) {
	t := self.TargetCreature()
	if t == nil || !t.Alive() || self.Gap(t) > s.Params.Reach || !self.CanSee(t) {
		return
	}
	if s.Sound != "" {
		self.PlaySound(ability.Sound{Name: s.Sound, Volume: 1, Pitch: 1})
	}
	t.Damage(s.damage(self), self, t.KnockbackFrom(self.Position(), s.Params.Knockback))
}

// Flinch is a one-shot hurt reaction. It completes as soon as it starts.
type Flinch struct {
	ability.Hooks
	Clip  string
	Sound string
}

func (f Flinch) DamageInterrupts() bool { return false }

func (f Flinch) BeginSection(a *ability.Ability, _ ability.Section) {
	a.User().PlayAnimation(ability.Animation{Controller: "body", Clip: f.Clip})
	if f.Sound != "" {
		ability.PlaySound(a.User(), ability.Sound{Name: f.Sound, Volume: 1, Pitch: 1})
	}
	a.Complete()
}

// Death plays the death sequence and leaves the creature inert.
type Death struct {
	ability.Hooks
	Clip  string
	Sound string
}

func (d Death) DamageInterrupts() bool                 { return false }
func (d Death) CanContinueUsing(*ability.Ability) bool { return true }

func (d Death) BeginSection(a *ability.Ability, _ ability.Section) {
	a.User().PlayAnimation(ability.Animation{Controller: "body", Clip: d.Clip})
	if d.Sound != "" {
		ability.PlaySound(a.User(), ability.Sound{Name: d.Sound, Volume: 1, Pitch: 1})
	}
}

func (d Death) OnComplete(a *ability.Ability) {
	if c, ok := a.User().(*creature.Creature); ok {
		c.MarkInert()
	}
}

// Supercharge is an overlay that powers up the user's strikes.
type Supercharge struct {
	ability.Hooks
	Clip string
}

func (s Supercharge) IsOverlay() bool { return true }

func (s Supercharge) BeginSection(a *ability.Ability, _ ability.Section) {
	if c, ok := a.User().(*creature.Creature); ok {
		c.SetFlag(FlagSupercharged, true)
	}
	if s.Clip != "" {
		a.User().PlayAnimation(ability.Animation{Controller: "body", Clip: s.Clip})
	}
	a.Complete()
}
