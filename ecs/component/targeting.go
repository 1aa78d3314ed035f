package component

// Targeting tracks the entity's current attack target. Target is the raw
// ecs.Entity value; zero means none.
type Targeting struct {
	Target uint64
	// AcquireRange bounds how far away a new target may be picked.
	AcquireRange float64
	// LoseRange drops the current target once it is farther than this.
	LoseRange float64
}

var TargetingComponent = NewComponent[Targeting]()

// Faction groups entities that never target each other.
type Faction struct {
	Name string
}

var FactionComponent = NewComponent[Faction]()
