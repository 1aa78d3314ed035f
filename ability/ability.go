package ability

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/LilRicefield/saints-dragons/logging"
)

// EndReason says which path returned an instance to idle.
type EndReason int

const (
	EndManual EndReason = iota
	EndComplete
	EndInterrupt
)

func (r EndReason) String() string {
	switch r {
	case EndComplete:
		return "complete"
	case EndInterrupt:
		return "interrupt"
	default:
		return "end"
	}
}

// Listener observes instance lifecycle transitions.
type Listener interface {
	AbilityStarted(a *Ability)
	AbilityEnded(a *Ability, reason EndReason, ticksInUse int)
	AbilityRejected(t *Type)
}

// Ability is one activation of a Type for a user. The state machine here is
// shared by every ability; Behavior hooks are the only extension point.
type Ability struct {
	typ      *Type
	user     Host
	track    Track
	behavior Behavior
	listener Listener

	cooldownMax    int
	cooldownTimer  int
	ticksInUse     int
	ticksInSection int
	sectionIndex   int
	using          bool
}

// New builds an idle instance. Factories call this with the type they were
// invoked for.
func New(t *Type, user Host, track Track, cooldown int, b Behavior) (*Ability, error) {
	if user == nil {
		return nil, ErrNilUser
	}
	if b == nil {
		return nil, ErrNilBehavior
	}
	if track.Len() == 0 {
		return nil, ErrEmptyTrack
	}
	if cooldown < 0 {
		cooldown = 0
	}
	return &Ability{
		typ:         t,
		user:        user,
		track:       track,
		behavior:    b,
		cooldownMax: cooldown,
	}, nil
}

func (a *Ability) Type() *Type            { return a.typ }
func (a *Ability) User() Host             { return a.user }
func (a *Ability) Track() Track           { return a.track }
func (a *Ability) Behavior() Behavior     { return a.behavior }
func (a *Ability) IsUsing() bool          { return a.using }
func (a *Ability) CooldownMax() int       { return a.cooldownMax }
func (a *Ability) CooldownTimer() int     { return a.cooldownTimer }
func (a *Ability) TicksInUse() int        { return a.ticksInUse }
func (a *Ability) TicksInSection() int    { return a.ticksInSection }
func (a *Ability) SectionIndex() int      { return a.sectionIndex }
func (a *Ability) SetListener(l Listener) { a.listener = l }

// CurrentSection returns the section being run. ok is false while idle.
func (a *Ability) CurrentSection() (Section, bool) {
	if !a.using || a.sectionIndex < 0 || a.sectionIndex >= a.track.Len() {
		return Section{}, false
	}
	return a.track.At(a.sectionIndex), true
}

// CanUse reports whether the instance may start: idle and off cooldown.
func (a *Ability) CanUse() bool {
	return !a.using && a.cooldownTimer == 0
}

func (a *Ability) DamageInterrupts() bool {
	return a.behavior.DamageInterrupts()
}

func (a *Ability) IsOverlay() bool {
	o, ok := a.behavior.(Overlay)
	return ok && o.IsOverlay()
}

func (a *Ability) IsAttack() bool {
	at, ok := a.behavior.(Attack)
	return ok && at.IsAttack()
}

// Start claims the user's active slot (unless the ability is an overlay),
// resets the counters and begins section 0. Starting while the slot is held by
// another ability is a logic error and is refused.
func (a *Ability) Start() error {
	if a.using {
		return fmt.Errorf("%w: %s", ErrAlreadyUsing, a.typ.Name())
	}
	if !a.IsOverlay() {
		if cur := a.user.ActiveAbility(); cur != nil && cur != a {
			a.log().WithField("holder", cur.typ.Name()).Warn("ability: start refused, slot occupied")
			return fmt.Errorf("%w: %s holds the slot", ErrSlotOccupied, cur.typ.Name())
		}
		a.user.SetActiveAbility(a)
	}

	a.ticksInUse = 0
	a.ticksInSection = 0
	a.sectionIndex = 0
	a.using = true
	a.log().Debug("ability: start")
	if a.listener != nil {
		a.listener.AbilityStarted(a)
	}
	a.behavior.BeginSection(a, a.track.At(0))
	return nil
}

// Tick advances the instance one simulation step. While idle only the
// cooldown counts down.
func (a *Ability) Tick() {
	if !a.using {
		if a.cooldownTimer > 0 {
			a.cooldownTimer--
		}
		return
	}

	if !a.behavior.CanContinueUsing(a) {
		a.Interrupt()
		return
	}
	a.behavior.TickUsing(a)
	if !a.using {
		return
	}

	a.ticksInUse++
	a.ticksInSection++

	s, ok := a.CurrentSection()
	if !ok {
		return
	}
	switch s.Kind {
	case KindInstant:
		a.NextSection()
	case KindDuration:
		if a.ticksInSection > s.Ticks {
			a.NextSection()
		}
	}
}

func (a *Ability) NextSection() {
	a.JumpToSection(a.sectionIndex + 1)
}

// JumpToSection ends the current section and begins section i. Jumping past
// the end of the track completes the ability.
func (a *Ability) JumpToSection(i int) {
	if !a.using {
		return
	}
	if cur, ok := a.CurrentSection(); ok {
		a.behavior.EndSection(a, cur)
		if !a.using {
			return
		}
	}
	if i < 0 {
		i = 0
	}
	a.sectionIndex = i
	a.ticksInSection = 0
	if i >= a.track.Len() {
		a.Complete()
		return
	}
	a.log().WithField("section", i).Debug("ability: section")
	a.behavior.BeginSection(a, a.track.At(i))
}

// End returns the instance to idle and arms the cooldown.
func (a *Ability) End() {
	a.finish(EndManual)
}

// Interrupt stops the ability before its natural end.
func (a *Ability) Interrupt() {
	if !a.using {
		return
	}
	if h, ok := a.behavior.(Interrupter); ok {
		h.OnInterrupt(a)
	}
	a.finish(EndInterrupt)
}

// Complete ends the ability after its last section.
func (a *Ability) Complete() {
	if !a.using {
		return
	}
	if h, ok := a.behavior.(Completer); ok {
		h.OnComplete(a)
	}
	a.finish(EndComplete)
}

func (a *Ability) finish(reason EndReason) {
	if !a.using {
		return
	}
	used := a.ticksInUse

	a.ticksInUse = 0
	a.ticksInSection = 0
	a.sectionIndex = 0
	a.using = false
	a.cooldownTimer = a.cooldownMax
	if a.user.ActiveAbility() == a {
		a.user.SetActiveAbility(nil)
	}

	a.log().WithFields(logrus.Fields{"reason": reason.String(), "ticks": used}).Debug("ability: end")
	if a.listener != nil {
		a.listener.AbilityEnded(a, reason, used)
	}
}

func (a *Ability) log() *logrus.Entry {
	return logging.Log.WithField("ability", a.typ.Name())
}
