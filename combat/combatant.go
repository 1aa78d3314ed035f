// Package combat holds the goals that decide when a creature attacks.
package combat

import (
	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
)

// Combatant is what the combat goals need from a creature.
type Combatant interface {
	Position() cp.Vector
	Radius() float64
	Alive() bool
	// Target returns the current attack target or nil.
	Target() Combatant
	CanSee(o Combatant) bool
	LookAt(o Combatant)
	MoveTo(o Combatant, speed float64)
	StopNavigation()
	AbilityManager() *ability.Manager
	InPhaseTwo() bool
}

// Gap is the distance between the edges of a and b, never negative.
func Gap(a, b Combatant) float64 {
	d := a.Position().Distance(b.Position()) - a.Radius() - b.Radius()
	if d < 0 {
		return 0
	}
	return d
}
