package nav

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Grid is an occupancy grid over a rectangle of the arena.
type Grid struct {
	bounds   cp.BB
	cellSize float64
	width    int
	height   int
	blocked  []bool
	maxNodes int
}

// NewGrid covers bounds with square cells of cellSize and marks the cells
// whose center solid reports as occupied.
func NewGrid(bounds cp.BB, cellSize float64, solid func(center cp.Vector) bool) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	w := int(math.Ceil((bounds.R - bounds.L) / cellSize))
	h := int(math.Ceil((bounds.T - bounds.B) / cellSize))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	g := &Grid{bounds: bounds, cellSize: cellSize, width: w, height: h, blocked: make([]bool, w*h), maxNodes: DefaultMaxNodes}
	if solid != nil {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.blocked[y*w+x] = solid(g.Center(Cell{X: x, Y: y}))
			}
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// CellAt returns the cell containing p, clamped to the grid.
func (g *Grid) CellAt(p cp.Vector) Cell {
	x := int(math.Floor((p.X - g.bounds.L) / g.cellSize))
	y := int(math.Floor((p.Y - g.bounds.B) / g.cellSize))
	return Cell{X: clamp(x, 0, g.width-1), Y: clamp(y, 0, g.height-1)}
}

func (g *Grid) Center(c Cell) cp.Vector {
	return cp.Vector{
		X: g.bounds.L + (float64(c.X)+0.5)*g.cellSize,
		Y: g.bounds.B + (float64(c.Y)+0.5)*g.cellSize,
	}
}

func (g *Grid) Blocked(c Cell) bool {
	if !inside(c, g.width, g.height) {
		return true
	}
	return g.blocked[c.Y*g.width+c.X]
}

// Path returns waypoints from 'from' to 'to'. Intermediate waypoints are
// cell centers; the last one is 'to' itself. The start cell may be blocked
// so a creature pressed against a wall can still leave it.
func (g *Grid) Path(from, to cp.Vector) []cp.Vector {
	start, goal := g.CellAt(from), g.CellAt(to)
	cells := AStar(start, goal, g.width, g.height, func(c Cell) bool {
		return c != start && g.Blocked(c)
	}, g.maxNodes)
	if cells == nil {
		return nil
	}
	out := make([]cp.Vector, 0, len(cells))
	for _, c := range cells[1:] {
		out = append(out, g.Center(c))
	}
	if len(out) == 0 {
		return []cp.Vector{to}
	}
	out[len(out)-1] = to
	return out
}

// Smooth drops waypoints that visible reports can be skipped, keeping the
// furthest visible one at each step.
func Smooth(from cp.Vector, path []cp.Vector, visible func(a, b cp.Vector) bool) []cp.Vector {
	if len(path) <= 1 || visible == nil {
		return path
	}
	var out []cp.Vector
	cur := from
	for i := 0; i < len(path); {
		j := len(path) - 1
		for j > i && !visible(cur, path[j]) {
			j--
		}
		out = append(out, path[j])
		cur = path[j]
		i = j + 1
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
