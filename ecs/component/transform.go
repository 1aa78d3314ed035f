package component

import "github.com/jakecoffman/cp"

type Transform struct {
	Position cp.Vector
	// Facing is the unit direction the entity looks along.
	Facing cp.Vector
}

var TransformComponent = NewComponent[Transform]()
