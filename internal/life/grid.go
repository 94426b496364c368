package life

import (
	"github.com/pkg/errors"

	"github.com/twhiting/tgol/internal/core"
)

const (
	liveHeat  = 255 // heat assigned when a cell turns on
	heatDecay = 50  // per-generation cooling of a dead cell
)

// Cell is a single grid position. Heat is a render-only trail: it is
// refreshed whenever the cell turns on and decays while the cell is dead,
// so renderers can draw a fading ember behind dying patterns. Heat never
// feeds back into the transition rule.
type Cell struct {
	Alive bool
	Heat  uint8
}

func (c *Cell) set(alive bool) {
	c.Alive = alive
	if alive {
		c.Heat = liveHeat
	}
}

func (c *Cell) cool() {
	if c.Alive || c.Heat == 0 {
		return
	}
	if c.Heat > heatDecay {
		c.Heat -= heatDecay
	} else {
		c.Heat = 0
	}
}

// Grid stores the cell field in row-major order. The board is a torus:
// reads wrap modulo width/height, while out-of-range writes are dropped
// (input front ends clamp device coordinates before calling).
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid allocates a dead grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Cells exposes the backing slice so renderers can read values directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// InBounds reports whether (x, y) lies inside the grid without wrapping.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get reports whether the cell at (x, y) is alive. Coordinates wrap.
func (g *Grid) Get(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.cells[y*g.w+x].Alive
}

// Heat returns the trail value at (x, y). Coordinates wrap.
func (g *Grid) Heat(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.cells[y*g.w+x].Heat
}

// Set writes a single cell. Out-of-range coordinates are dropped.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x].set(alive)
}

// CountLiveNeighbors counts live cells in the Moore neighborhood of (x, y),
// wrapping across the edges.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	x, y = g.Wrap(x, y)

	xm1, xp1 := x-1, x+1
	if x == 0 {
		xm1 = g.w - 1
	}
	if x == g.w-1 {
		xp1 = 0
	}
	ym1, yp1 := y-1, y+1
	if y == 0 {
		ym1 = g.h - 1
	}
	if y == g.h-1 {
		yp1 = 0
	}

	n := 0
	for _, row := range [3]int{ym1 * g.w, y * g.w, yp1 * g.w} {
		if g.cells[row+xm1].Alive {
			n++
		}
		if g.cells[row+xp1].Alive {
			n++
		}
	}
	if g.cells[ym1*g.w+x].Alive {
		n++
	}
	if g.cells[yp1*g.w+x].Alive {
		n++
	}
	return n
}

// CopyFrom bulk-copies another grid of identical dimensions.
func (g *Grid) CopyFrom(o *Grid) {
	if g.w != o.w || g.h != o.h {
		return
	}
	copy(g.cells, o.cells)
}

// Clear kills every cell and drops all heat.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// ClearHeat zeroes the residual heat of dead cells, leaving live cells alone.
func (g *Grid) ClearHeat() {
	for i := range g.cells {
		if !g.cells[i].Alive {
			g.cells[i].Heat = 0
		}
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Alive {
			n++
		}
	}
	return n
}
