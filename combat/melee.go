package combat

import (
	"math/rand"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/goal"
	"github.com/LilRicefield/saints-dragons/logging"
)

const DefaultMinAttackCooldown = 10

type MeleeConfig struct {
	// Bands in increasing reach order.
	Bands []Band
	// MinAttackCooldown is the number of ticks between attack attempts
	// after one succeeds.
	MinAttackCooldown int
	// Speed is passed to MoveTo while closing the gap.
	Speed float64
	// PhaseTwoOpeners start once, in order, the first time the creature is
	// seen in its second phase.
	PhaseTwoOpeners []*ability.Type
	Rand            *rand.Rand
}

// MeleeGoal chases the current target and picks an attack by range band.
type MeleeGoal struct {
	goal.Base
	self Combatant
	cfg  MeleeConfig
	rng  *rand.Rand

	attackCooldown int
	target         Combatant
	// current is the last slot-holding ability this goal started.
	current *ability.Ability

	phaseTwoSeen bool
	openers      []*ability.Type
}

func NewMeleeGoal(self Combatant, cfg MeleeConfig) (*MeleeGoal, error) {
	if self == nil {
		return nil, ErrNilCombatant
	}
	if err := validateBands(cfg.Bands); err != nil {
		return nil, err
	}
	if cfg.MinAttackCooldown <= 0 {
		cfg.MinAttackCooldown = DefaultMinAttackCooldown
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &MeleeGoal{self: self, cfg: cfg, rng: rng}, nil
}

func (g *MeleeGoal) Flags() goal.Flag              { return goal.FlagMove | goal.FlagLook }
func (g *MeleeGoal) RequiresUpdateEveryTick() bool { return true }

// AttackCooldown returns the ticks left before the next attempt.
func (g *MeleeGoal) AttackCooldown() int { return g.attackCooldown }

// engaged requires a living target and no slot-holding ability the goal
// did not start itself, such as a flinch or a death sequence.
func (g *MeleeGoal) engaged() bool {
	if !g.self.Alive() {
		return false
	}
	if a := g.self.AbilityManager().Active(); a != nil && a != g.current {
		return false
	}
	t := g.self.Target()
	return t != nil && t.Alive()
}

func (g *MeleeGoal) CanUse() bool           { return g.engaged() }
func (g *MeleeGoal) CanContinueToUse() bool { return g.engaged() }

func (g *MeleeGoal) Start() {
	g.attackCooldown = 0
	g.target = g.self.Target()
}

func (g *MeleeGoal) Stop() {
	g.attackCooldown = 0
	g.target = nil
	g.self.StopNavigation()
}

func (g *MeleeGoal) Tick() {
	t := g.self.Target()
	if t == nil || !t.Alive() {
		return
	}
	g.target = t
	g.self.LookAt(t)
	if g.attackCooldown > 0 {
		g.attackCooldown--
	}

	m := g.self.AbilityManager()
	g.openPhaseTwo(m)

	if m.Active() != nil {
		g.self.StopNavigation()
		return
	}

	band, ok := bandFor(g.cfg.Bands, Gap(g.self, t))
	if !ok || !g.self.CanSee(t) {
		g.self.MoveTo(t, g.cfg.Speed)
		return
	}
	g.self.StopNavigation()
	if g.attackCooldown > 0 {
		return
	}

	typ := band.Choose(g.self, g.rng)
	if typ == nil || !m.CanStart(typ) {
		return
	}
	if inst, ok := m.TryStart(typ); ok {
		g.claim(m, inst)
		g.attackCooldown = g.cfg.MinAttackCooldown
		logging.Log.WithField("band", band.Name).WithField("ability", typ.Name()).Debug("combat: attack")
	}
}

// openPhaseTwo queues the openers on the first phase-two tick and starts
// them one at a time as the slot allows.
func (g *MeleeGoal) openPhaseTwo(m *ability.Manager) {
	if !g.phaseTwoSeen && g.self.InPhaseTwo() {
		g.phaseTwoSeen = true
		g.openers = append(g.openers[:0], g.cfg.PhaseTwoOpeners...)
	}
	for len(g.openers) > 0 {
		next := g.openers[0]
		if !m.CanStart(next) {
			return
		}
		g.openers = g.openers[1:]
		if inst, ok := m.TryStart(next); ok {
			g.claim(m, inst)
		}
	}
}

func (g *MeleeGoal) claim(m *ability.Manager, inst *ability.Ability) {
	if m.Active() == inst {
		g.current = inst
	}
}
