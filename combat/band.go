package combat

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/LilRicefield/saints-dragons/ability"
)

var (
	ErrNoBands      = errors.New("combat: no range bands")
	ErrBandOrder    = errors.New("combat: bands must have increasing reach")
	ErrNilChooser   = errors.New("combat: band has no chooser")
	ErrNilCombatant = errors.New("combat: nil combatant")
)

// Chooser picks the ability to try for a band. Returning nil skips the
// attempt this tick.
type Chooser func(self Combatant, rng *rand.Rand) *ability.Type

// Fixed always picks t.
func Fixed(t *ability.Type) Chooser {
	return func(Combatant, *rand.Rand) *ability.Type { return t }
}

// Random picks uniformly among types.
func Random(types ...*ability.Type) Chooser {
	return func(_ Combatant, rng *rand.Rand) *ability.Type {
		if len(types) == 0 {
			return nil
		}
		return types[rng.Intn(len(types))]
	}
}

// ByPhase defers to phaseTwo once the creature is in its second phase.
func ByPhase(phaseOne, phaseTwo Chooser) Chooser {
	return func(self Combatant, rng *rand.Rand) *ability.Type {
		if self.InPhaseTwo() {
			return phaseTwo(self, rng)
		}
		return phaseOne(self, rng)
	}
}

// Band is a range bracket: gaps up to Reach (and above the previous band's
// reach) select Choose.
type Band struct {
	Name   string
	Reach  float64
	Choose Chooser
}

func validateBands(bands []Band) error {
	if len(bands) == 0 {
		return ErrNoBands
	}
	prev := 0.0
	for i, b := range bands {
		if b.Choose == nil {
			return fmt.Errorf("%w: %q", ErrNilChooser, b.Name)
		}
		if b.Reach <= prev && i > 0 || b.Reach <= 0 {
			return fmt.Errorf("%w: %q reach %.2f", ErrBandOrder, b.Name, b.Reach)
		}
		prev = b.Reach
	}
	return nil
}

// bandFor returns the first band whose reach covers gap.
func bandFor(bands []Band, gap float64) (Band, bool) {
	for _, b := range bands {
		if gap <= b.Reach {
			return b, true
		}
	}
	return Band{}, false
}
