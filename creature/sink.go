package creature

import (
	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/ecs"
)

// Sink receives presentation requests. Abilities never render or play
// audio themselves.
type Sink interface {
	TriggerAnimation(e ecs.Entity, anim ability.Animation)
	PlaySound(e ecs.Entity, s ability.Sound, at cp.Vector)
}

const (
	EventAnimation = "animation"
	EventSound     = "sound"
)

type AnimationEvent struct {
	Entity    ecs.Entity
	Animation ability.Animation
}

type SoundEvent struct {
	Entity ecs.Entity
	Sound  ability.Sound
	At     cp.Vector
}

// EventSink queues presentation requests on a world's event queue.
type EventSink struct {
	World *ecs.World
}

func (s EventSink) TriggerAnimation(e ecs.Entity, anim ability.Animation) {
	s.World.Emit(EventAnimation, AnimationEvent{Entity: e, Animation: anim})
}

func (s EventSink) PlaySound(e ecs.Entity, snd ability.Sound, at cp.Vector) {
	s.World.Emit(EventSound, SoundEvent{Entity: e, Sound: snd, At: at})
}
