// Package goal implements a priority-ordered goal selector. Goals claim
// control flags; a goal may only start when every flag it needs is free or
// held by a lower-priority goal that can be interrupted.
package goal

import "strings"

type Flag uint8

const (
	FlagMove Flag = 1 << iota
	FlagLook
	FlagJump
	FlagTarget

	flagCount = iota
)

var flagNames = [...]string{"move", "look", "jump", "target"}

func (f Flag) Has(o Flag) bool {
	return f&o == o
}

func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for i := 0; i < flagCount; i++ {
		if f&(1<<i) != 0 {
			parts = append(parts, flagNames[i])
		}
	}
	return strings.Join(parts, "|")
}

func (f Flag) each(fn func(Flag)) {
	for i := 0; i < flagCount; i++ {
		if bit := Flag(1 << i); f&bit != 0 {
			fn(bit)
		}
	}
}

// Goal is one behaviour competing for control of an entity.
type Goal interface {
	CanUse() bool
	CanContinueToUse() bool
	IsInterruptable() bool
	Start()
	Stop()
	Tick()
	// RequiresUpdateEveryTick goals tick every selector tick; others tick
	// on alternate ticks.
	RequiresUpdateEveryTick() bool
	Flags() Flag
}

// Base supplies defaults for the optional parts of Goal.
type Base struct{}

func (Base) IsInterruptable() bool         { return true }
func (Base) Start()                        {}
func (Base) Stop()                         {}
func (Base) Tick()                         {}
func (Base) RequiresUpdateEveryTick() bool { return false }
