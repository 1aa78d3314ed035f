package ability

// Behavior holds the per-ability hooks. The state machine in Ability calls
// them and never performs gameplay effects itself.
type Behavior interface {
	BeginSection(a *Ability, s Section)
	EndSection(a *Ability, s Section)
	// TickUsing runs once per tick while the ability is in use, before the
	// counters advance.
	TickUsing(a *Ability)
	// CanContinueUsing is checked at the top of every tick; false interrupts.
	CanContinueUsing(a *Ability) bool
	// DamageInterrupts reports whether incoming damage interrupts the ability.
	DamageInterrupts() bool
}

// Hooks is a no-op Behavior meant to be embedded by concrete behaviors.
type Hooks struct{}

func (Hooks) BeginSection(*Ability, Section) {}
func (Hooks) EndSection(*Ability, Section)   {}
func (Hooks) TickUsing(*Ability)             {}

// CanContinueUsing keeps the ability running while its user is viable.
func (Hooks) CanContinueUsing(a *Ability) bool { return Viable(a.User()) }

func (Hooks) DamageInterrupts() bool { return true }

// Living is implemented by hosts that can die or go inert.
type Living interface {
	Alive() bool
}

// Viable reports whether host can keep using abilities. Hosts that do not
// implement Living are always viable.
func Viable(host Host) bool {
	l, ok := host.(Living)
	return !ok || l.Alive()
}

// Interrupter runs cleanup before an interrupted ability resets.
type Interrupter interface {
	OnInterrupt(a *Ability)
}

// Completer runs cleanup before a completed ability resets.
type Completer interface {
	OnComplete(a *Ability)
}

// Overlay marks abilities that run without claiming the host's active slot.
type Overlay interface {
	IsOverlay() bool
}

// Attack marks abilities during which movement is locked.
type Attack interface {
	IsAttack() bool
}
