package script

import (
	"github.com/d5/tengo/v2"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/logging"
)

// Behavior runs base first, then the matching script hook. A script error
// interrupts the ability.
type Behavior struct {
	ability.Behavior
	prog     *Program
	compiled *tengo.Compiled
}

// Wrap layers p over base. Each call gets its own copy of the script globals.
func (p *Program) Wrap(base ability.Behavior) *Behavior {
	if base == nil {
		base = ability.Hooks{}
	}
	return &Behavior{Behavior: base, prog: p, compiled: p.compiled.Clone()}
}

func (b *Behavior) BeginSection(a *ability.Ability, s ability.Section) {
	b.Behavior.BeginSection(a, s)
	if a.IsUsing() {
		b.run(a, hookBegin, s.Phase.String())
	}
}

func (b *Behavior) EndSection(a *ability.Ability, s ability.Section) {
	b.Behavior.EndSection(a, s)
	if a.IsUsing() {
		b.run(a, hookEnd, s.Phase.String())
	}
}

func (b *Behavior) TickUsing(a *ability.Ability) {
	b.Behavior.TickUsing(a)
	if a.IsUsing() {
		b.run(a, hookTick, "")
	}
}

func (b *Behavior) IsOverlay() bool {
	o, ok := b.Behavior.(ability.Overlay)
	return ok && o.IsOverlay()
}

func (b *Behavior) IsAttack() bool {
	o, ok := b.Behavior.(ability.Attack)
	return ok && o.IsAttack()
}

func (b *Behavior) OnInterrupt(a *ability.Ability) {
	if o, ok := b.Behavior.(ability.Interrupter); ok {
		o.OnInterrupt(a)
	}
}

func (b *Behavior) OnComplete(a *ability.Ability) {
	if o, ok := b.Behavior.(ability.Completer); ok {
		o.OnComplete(a)
	}
}

func (b *Behavior) run(a *ability.Ability, hook, phase string) {
	if !b.prog.Defines(hook) {
		return
	}
	err := b.compiled.Set("__hook", hook)
	if err == nil {
		err = b.compiled.Set("__phase", phase)
	}
	if err == nil {
		err = b.compiled.Set("__engine", engine(a))
	}
	if err == nil {
		err = b.compiled.Run()
	}
	if err != nil {
		logging.Log.WithField("ability", a.Type().Name()).
			WithField("script", b.prog.Name()).
			WithField("hook", hook).
			WithError(err).Error("script: hook failed")
		a.Interrupt()
	}
}
