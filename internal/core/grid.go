package core

import (
	"fmt"
	"math"
)

// Cell is a single grid location. ID is the stick rank of the particle that
// froze here; it is zero for seed particles and for empty cells.
type Cell struct {
	Filled bool
	ID     int
}

// Grid stores a 2D field of cells in row-major order. The shape is fixed at
// construction; changing dimensions means building a new Grid.
type Grid struct {
	W, H  int
	cells []Cell
}

// SeedKind selects the initial pattern of pre-stuck cells.
type SeedKind int

const (
	SeedCenter SeedKind = iota
	SeedBottomEdge
	SeedAllEdges
	SeedFourDots
	SeedRandomFive
	SeedCircle
)

// SeedKinds lists every seed kind in declaration order, for UI cycling.
var SeedKinds = []SeedKind{
	SeedCenter,
	SeedBottomEdge,
	SeedAllEdges,
	SeedFourDots,
	SeedRandomFive,
	SeedCircle,
}

func (k SeedKind) String() string {
	switch k {
	case SeedCenter:
		return "Center"
	case SeedBottomEdge:
		return "Bottom Edge"
	case SeedAllEdges:
		return "All Edges"
	case SeedFourDots:
		return "Four Dots"
	case SeedRandomFive:
		return "Random Five"
	case SeedCircle:
		return "Circle"
	default:
		return fmt.Sprintf("SeedKind(%d)", int(k))
	}
}

// NewGrid allocates an all-empty grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("grid dimensions must be positive, got %dx%d", w, h))
	}
	if w > math.MaxInt/h {
		panic(fmt.Sprintf("grid size %dx%d overflows", w, h))
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Build constructs a grid pre-filled with the pattern selected by kind.
// Seed cells are filled with ID zero; they carry no stick rank.
func Build(kind SeedKind, w, h int, rng *RNG) *Grid {
	g := NewGrid(w, h)
	switch kind {
	case SeedBottomEdge:
		g.fillBottomEdge()
	case SeedAllEdges:
		g.fillBottomEdge()
		for x := 0; x < w; x++ {
			g.cells[g.Index(x, 0)].Filled = true
		}
		for y := 0; y < h; y++ {
			g.cells[g.Index(0, y)].Filled = true
			g.cells[g.Index(w-1, y)].Filled = true
		}
	case SeedFourDots:
		// One dot per quadrant, on the third-lines.
		g.cells[g.Index(w/3, h/3)].Filled = true
		g.cells[g.Index(2*w/3, h/3)].Filled = true
		g.cells[g.Index(w/3, 2*h/3)].Filled = true
		g.cells[g.Index(2*w/3, 2*h/3)].Filled = true
	case SeedRandomFive:
		// With replacement: duplicate picks overwrite the same cell.
		for i := 0; i < 5; i++ {
			g.cells[g.Index(rng.IntN(w), rng.IntN(h))].Filled = true
		}
	case SeedCircle:
		r := w
		if h < r {
			r = h
		}
		g.fillCircle(r / 10)
	default:
		g.cells[w/2+(h/2)*w].Filled = true
	}
	return g
}

func (g *Grid) fillBottomEdge() {
	for x := 0; x < g.W; x++ {
		g.cells[g.Index(x, g.H-1)].Filled = true
	}
}

// fillCircle marks the ring of cells whose truncated distance to the grid
// center equals radius. Integer truncation makes the ring slightly uneven.
func (g *Grid) fillCircle(radius int) {
	if radius >= g.W/2 || radius >= g.H/2 {
		panic(fmt.Sprintf("circle radius %d does not fit a %dx%d grid", radius, g.W, g.H))
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if Distance(x, y, g.W/2, g.H/2) == radius {
				g.cells[g.Index(x, y)].Filled = true
			}
		}
	}
}

// Cells exposes the backing slice so callers can read cells directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + y*g.W }

// InBounds reports whether (x, y) is a valid position on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Filled reports whether the cell at idx holds a particle.
func (g *Grid) Filled(idx int) bool { return g.cells[idx].Filled }

// SetFilled marks or clears the particle occupancy of the cell at idx.
func (g *Grid) SetFilled(idx int, filled bool) { g.cells[idx].Filled = filled }

// SetID records the stick rank of the cell at idx.
func (g *Grid) SetID(idx, id int) { g.cells[idx].ID = id }

// StuckCount returns the number of filled cells.
func (g *Grid) StuckCount() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Filled {
			n++
		}
	}
	return n
}

// Distance is the Euclidean distance between two points, truncated to an
// integer.
func Distance(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return int(math.Sqrt(float64(dx*dx + dy*dy)))
}

// DistToCenter returns the truncated distance from (x, y) to the grid center.
func (g *Grid) DistToCenter(x, y int) int {
	return Distance(x, y, g.W/2, g.H/2)
}
