package ability

import "testing"

type testHost struct {
	active *Ability
	types  []*Type
	anims  []Animation
	sounds []Sound
	dead   bool
}

func (h *testHost) ActiveAbility() *Ability     { return h.active }
func (h *testHost) SetActiveAbility(a *Ability) { h.active = a }
func (h *testHost) PlayAnimation(a Animation)   { h.anims = append(h.anims, a) }
func (h *testHost) Abilities() []*Type          { return h.types }
func (h *testHost) PlaySound(s Sound)           { h.sounds = append(h.sounds, s) }
func (h *testHost) Alive() bool                 { return !h.dead }

// recorder logs hook calls as "begin:PHASE" / "end:PHASE".
type recorder struct {
	Hooks
	calls    []string
	overlay  bool
	attack   bool
	noDamage bool
	// completeOnBegin completes synchronously from BeginSection.
	completeOnBegin bool
	completes       int
	interrupts      int
}

func (r *recorder) BeginSection(a *Ability, s Section) {
	r.calls = append(r.calls, "begin:"+s.Phase.String())
	if r.completeOnBegin {
		a.Complete()
	}
}

func (r *recorder) EndSection(_ *Ability, s Section) {
	r.calls = append(r.calls, "end:"+s.Phase.String())
}

func (r *recorder) DamageInterrupts() bool { return !r.noDamage }
func (r *recorder) IsOverlay() bool        { return r.overlay }
func (r *recorder) IsAttack() bool         { return r.attack }
func (r *recorder) OnComplete(*Ability)    { r.completes++ }
func (r *recorder) OnInterrupt(*Ability)   { r.interrupts++ }

type endEvent struct {
	name   string
	reason EndReason
	ticks  int
}

type testListener struct {
	started  []string
	ended    []endEvent
	rejected []string
}

func (l *testListener) AbilityStarted(a *Ability) { l.started = append(l.started, a.Type().Name()) }
func (l *testListener) AbilityEnded(a *Ability, reason EndReason, ticks int) {
	l.ended = append(l.ended, endEvent{a.Type().Name(), reason, ticks})
}
func (l *testListener) AbilityRejected(t *Type) { l.rejected = append(l.rejected, t.Name()) }

// typeFor builds a type whose instances use track, cooldown and a behavior
// produced by mk. The most recent behavior is stored in *last.
func typeFor(t *testing.T, name string, track Track, cooldown int, mk func() *recorder, last **recorder) *Type {
	t.Helper()
	typ, err := NewType(name, func(typ *Type, user Host) (*Ability, error) {
		r := mk()
		if last != nil {
			*last = r
		}
		return New(typ, user, track, cooldown, r)
	})
	if err != nil {
		t.Fatalf("NewType(%q): %v", name, err)
	}
	return typ
}

func newInstance(t *testing.T, host *testHost, typ *Type) *Ability {
	t.Helper()
	a, err := typ.New(host)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func plain() *recorder { return &recorder{} }
