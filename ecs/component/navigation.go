package component

import "github.com/jakecoffman/cp"

// Navigation moves an entity toward Destination at Speed units per tick
// until it is within StopDistance. Waypoints, when set, are visited first.
type Navigation struct {
	Destination  cp.Vector
	Speed        float64
	StopDistance float64
	Active       bool
	Waypoints    []cp.Vector
	// RoutedAt is the world tick Waypoints were planned on.
	RoutedAt uint64
}

var NavigationComponent = NewComponent[Navigation]()
