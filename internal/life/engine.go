package life

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/twhiting/tgol/internal/core"
)

// Options configure a new Engine.
type Options struct {
	Width  int
	Height int

	// Density is the probability a cell starts live in Randomize.
	Density float64
	// KillFraction is the probability a live cell dies in a kill sample.
	KillFraction float64

	Seed int64

	// Workers is the number of row bands Step computes concurrently.
	// Zero or less selects runtime.NumCPU; one forces the serial path.
	Workers int

	StartPaused bool
}

// Engine owns the board and advances it by the B3/S23 rule. It double-buffers
// generations: Step reads only the frozen current grid and writes only the
// scratch grid, then swaps the two. That read/write separation is what makes
// the banded parallel step safe.
type Engine struct {
	grid    *Grid
	scratch *Grid

	rng          *core.RNG
	density      float64
	killFraction float64
	workers      int

	paused     bool
	generation int
}

// NewEngine validates the options and builds an engine with a dead board.
func NewEngine(opts Options) (*Engine, error) {
	grid, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	scratch, err := NewGrid(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := checkProbability("density", opts.Density); err != nil {
		return nil, err
	}
	if err := checkProbability("kill fraction", opts.KillFraction); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		grid:         grid,
		scratch:      scratch,
		rng:          core.NewRNG(opts.Seed),
		density:      opts.Density,
		killFraction: opts.KillFraction,
		workers:      workers,
		paused:       opts.StartPaused,
	}, nil
}

// Step advances the board by one generation. It is a no-op while paused;
// tick-rate gating is the caller's business, Step never sleeps.
func (e *Engine) Step() {
	if e.paused {
		return
	}
	e.advance()
}

// StepOnce advances exactly one generation regardless of pause, so a paused
// board can be frame-stepped while sculpting.
func (e *Engine) StepOnce() { e.advance() }

func (e *Engine) advance() {
	if e.workers > 1 && e.grid.h >= e.workers {
		e.advanceParallel()
	} else {
		e.computeRows(0, e.grid.h)
	}
	e.grid, e.scratch = e.scratch, e.grid
	e.generation++
}

func (e *Engine) advanceParallel() {
	var eg errgroup.Group
	band := (e.grid.h + e.workers - 1) / e.workers
	for i := 0; i < e.workers; i++ {
		y0 := i * band
		y1 := min(y0+band, e.grid.h)
		if y0 >= y1 {
			break
		}
		eg.Go(func() error {
			e.computeRows(y0, y1)
			return nil
		})
	}
	// Workers cannot fail; Wait is only the join point.
	_ = eg.Wait()
}

// computeRows writes rows [y0, y1) of the next generation into scratch,
// reading only the current grid.
func (e *Engine) computeRows(y0, y1 int) {
	g, next := e.grid, e.scratch
	for y := y0; y < y1; y++ {
		for x := 0; x < g.w; x++ {
			idx := y*g.w + x
			n := g.CountLiveNeighbors(x, y)
			cell := g.cells[idx]
			if (cell.Alive && (n == 2 || n == 3)) || (!cell.Alive && n == 3) {
				cell.set(true)
			} else {
				cell.set(false)
				cell.cool()
			}
			next.cells[idx] = cell
		}
	}
}

// Randomize reseeds the board at the configured density. Pause state is
// not affected.
func (e *Engine) Randomize() error {
	return e.RandomizeDensity(e.density)
}

// RandomizeDensity sets every cell live with independent probability p,
// killing the rest.
func (e *Engine) RandomizeDensity(p float64) error {
	if err := checkProbability("density", p); err != nil {
		return err
	}
	for i := range e.grid.cells {
		e.grid.cells[i] = Cell{}
		if e.rng.Float64() < p {
			e.grid.cells[i].set(true)
		}
	}
	return nil
}

// KillSample kills each live cell with independent probability fraction and
// returns how many died. Dead cells are never touched.
func (e *Engine) KillSample(fraction float64) (int, error) {
	if err := checkProbability("kill fraction", fraction); err != nil {
		return 0, err
	}
	killed := 0
	for i := range e.grid.cells {
		c := &e.grid.cells[i]
		if c.Alive && e.rng.Float64() < fraction {
			c.set(false)
			killed++
		}
	}
	return killed, nil
}

// KillFraction returns the configured kill probability.
func (e *Engine) KillFraction() float64 { return e.killFraction }

// Normalize settles a freshly randomized board: cull once at the configured
// kill fraction, run a few generations, then drop the residual heat so the
// trail starts clean. A raw random fill is too noisy to watch otherwise.
func (e *Engine) Normalize(generations int) {
	_, _ = e.KillSample(e.killFraction)
	for i := 0; i < generations; i++ {
		e.advance()
	}
	e.grid.ClearHeat()
}

// SetCell writes one cell directly. Out-of-range coordinates are ignored.
func (e *Engine) SetCell(x, y int, alive bool) {
	e.grid.Set(x, y, alive)
}

// ToggleCell flips one cell and returns its new state. Front ends latch the
// return value as the draw value for the rest of a drag stroke.
func (e *Engine) ToggleCell(x, y int) bool {
	if !e.grid.InBounds(x, y) {
		return false
	}
	c := &e.grid.cells[e.grid.Index(x, y)]
	c.set(!c.Alive)
	return c.Alive
}

// DrawLine sets every cell on the segment from (x0, y0) to (x1, y1) to alive,
// endpoints included. Rasterized with Bresenham so frame-sampled mouse drags
// leave no gaps.
func (e *Engine) DrawLine(x0, y0, x1, y1 int, alive bool) {
	bresenham(x0, y0, x1, y1, func(x, y int) {
		e.grid.Set(x, y, alive)
	})
}

// TogglePause flips the pause state and returns the new value.
func (e *Engine) TogglePause() bool {
	e.paused = !e.paused
	return e.paused
}

// SetPaused sets the pause state explicitly.
func (e *Engine) SetPaused(p bool) { e.paused = p }

// Paused reports whether Step is currently gated off.
func (e *Engine) Paused() bool { return e.paused }

// Grid returns the current generation for read-only use by renderers.
func (e *Engine) Grid() *Grid { return e.grid }

// Generation returns how many generations have been computed.
func (e *Engine) Generation() int { return e.generation }

// Population returns the number of live cells on the current board.
func (e *Engine) Population() int { return e.grid.Population() }

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return errors.Errorf("%s must be in [0, 1], got %v", name, p)
	}
	return nil
}
