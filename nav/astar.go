// Package nav plans routes for walking creatures over a coarse occupancy
// grid built from the arena's static obstacles.
package nav

import (
	"container/heap"
	"math"
)

// Cell is a grid coordinate.
type Cell struct {
	X int
	Y int
}

// DefaultMaxNodes bounds a single search.
const DefaultMaxNodes = 4096

var neighbors = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

type openItem struct {
	idx int
	f   float64
}

type openSet []openItem

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].idx < o[j].idx
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)   { *o = append(*o, x.(openItem)) }

func (o *openSet) Pop() any {
	old := *o
	it := old[len(old)-1]
	*o = old[:len(old)-1]
	return it
}

// AStar finds a 4-way path from start to goal on a width x height grid.
// The path includes both ends. It returns nil when goal is blocked, out of
// range, unreachable, or the search expands more than maxNodes cells.
func AStar(start, goal Cell, width, height int, blocked func(Cell) bool, maxNodes int) []Cell {
	if width <= 0 || height <= 0 || !inside(start, width, height) || !inside(goal, width, height) {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}
	if blocked != nil && blocked(goal) {
		return nil
	}
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}

	n := width * height
	index := func(c Cell) int { return c.Y*width + c.X }
	cell := func(i int) Cell { return Cell{X: i % width, Y: i / width} }

	g := make([]float64, n)
	for i := range g {
		g[i] = math.Inf(1)
	}
	from := make([]int, n)
	closed := make([]bool, n)

	s, t := index(start), index(goal)
	g[s] = 0
	from[s] = -1
	open := &openSet{{idx: s, f: manhattan(start, goal)}}

	for expanded := 0; open.Len() > 0 && expanded < maxNodes; {
		cur := heap.Pop(open).(openItem).idx
		if closed[cur] {
			continue
		}
		if cur == t {
			return walkBack(from, t, cell)
		}
		closed[cur] = true
		expanded++

		c := cell(cur)
		for _, d := range neighbors {
			nc := Cell{X: c.X + d.X, Y: c.Y + d.Y}
			if !inside(nc, width, height) || (blocked != nil && blocked(nc)) {
				continue
			}
			ni := index(nc)
			if closed[ni] {
				continue
			}
			if cost := g[cur] + 1; cost < g[ni] {
				g[ni] = cost
				from[ni] = cur
				heap.Push(open, openItem{idx: ni, f: cost + manhattan(nc, goal)})
			}
		}
	}
	return nil
}

func walkBack(from []int, end int, cell func(int) Cell) []Cell {
	var path []Cell
	for i := end; i >= 0; i = from[i] {
		path = append(path, cell(i))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func inside(c Cell, width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}

func manhattan(a, b Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
