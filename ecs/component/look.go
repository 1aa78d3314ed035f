package component

import "github.com/jakecoffman/cp"

// Look is a request to face a world point; the navigation system turns the
// transform toward it and clears the request.
type Look struct {
	Target cp.Vector
	Set    bool
}

var LookComponent = NewComponent[Look]()
