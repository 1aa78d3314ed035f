package combat

import "github.com/LilRicefield/saints-dragons/goal"

// MovementLockGoal holds a creature in place while an attack ability is
// active, so lower-priority movement goals cannot move it mid-swing.
type MovementLockGoal struct {
	goal.Base
	self Combatant
}

func NewMovementLockGoal(self Combatant) *MovementLockGoal {
	return &MovementLockGoal{self: self}
}

func (g *MovementLockGoal) Flags() goal.Flag              { return goal.FlagMove | goal.FlagLook }
func (g *MovementLockGoal) RequiresUpdateEveryTick() bool { return true }
func (g *MovementLockGoal) IsInterruptable() bool         { return false }

func (g *MovementLockGoal) locked() bool {
	a := g.self.AbilityManager().Active()
	return a != nil && a.IsAttack()
}

func (g *MovementLockGoal) CanUse() bool           { return g.locked() }
func (g *MovementLockGoal) CanContinueToUse() bool { return g.locked() }

func (g *MovementLockGoal) Start() { g.self.StopNavigation() }

func (g *MovementLockGoal) Tick() {
	g.self.StopNavigation()
	if t := g.self.Target(); t != nil {
		g.self.LookAt(t)
	}
}
