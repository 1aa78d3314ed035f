package component

import "github.com/LilRicefield/saints-dragons/goal"

type Goals struct {
	Selector *goal.Selector
}

var GoalsComponent = NewComponent[Goals]()
