package ability

// Animation names a clip to trigger on one of the user's animation controllers.
type Animation struct {
	Controller string
	Clip       string
}

// Sound is a positioned sound request. The host supplies the position.
type Sound struct {
	Name   string
	Volume float64
	Pitch  float64
}

// Host is implemented by entities that can perform abilities. A host holds at
// most one active ability at a time.
type Host interface {
	ActiveAbility() *Ability
	SetActiveAbility(a *Ability)
	// PlayAnimation forwards a trigger request to presentation. It is fire and
	// forget.
	PlayAnimation(anim Animation)
	// Abilities enumerates the types this host can perform.
	Abilities() []*Type
}

// SoundEmitter is implemented by hosts that can play sounds at their position.
type SoundEmitter interface {
	PlaySound(s Sound)
}

// PlaySound plays s on host when it supports sounds and drops it otherwise.
func PlaySound(host Host, s Sound) {
	if emitter, ok := host.(SoundEmitter); ok {
		emitter.PlaySound(s)
	}
}
