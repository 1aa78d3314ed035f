package component

// Body is the creature's collision circle.
type Body struct {
	Radius float64
}

var BodyComponent = NewComponent[Body]()
