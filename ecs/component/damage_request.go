package component

import "github.com/jakecoffman/cp"

// DamageRequest is a transient component accumulating the hits an entity
// took this tick. The damage system applies it then removes it.
type DamageRequest struct {
	Amount float64
	Hits   int
	// Knockback is summed displacement applied with the damage.
	Knockback    cp.Vector
	SourceEntity uint64
}

var DamageRequestComponent = NewComponent[DamageRequest]()
