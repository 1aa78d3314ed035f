package component

// Dead marks an entity whose health reached zero.
type Dead struct{}

var DeadComponent = NewComponent[Dead]()

// Inert marks a dead entity whose death sequence has finished.
type Inert struct{}

var InertComponent = NewComponent[Inert]()
