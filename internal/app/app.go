//go:build ebiten

package app

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/twhiting/tgol/internal/life"
	"github.com/twhiting/tgol/internal/render"
	"github.com/twhiting/tgol/internal/ui"
)

// Game adapts the engine to the ebiten.Game interface. It is the frame
// driver and the input adapter in one: each Update drains the device input,
// applies the resulting engine commands in event order, then advances the
// board. ebiten calls Update at the configured TPS.
type Game struct {
	engine  *life.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	stats   *Stats
	scale   int

	// drag stroke state
	drawing   bool
	drawAlive bool
	prevX     int
	prevY     int

	tickOnce bool
	lastStep time.Time
}

// New constructs the GUI front end around an engine.
func New(engine *life.Engine, scale int) *Game {
	size := engine.Grid().Size()
	return &Game{
		engine:  engine,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		stats:   NewStats(),
		scale:   scale,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.engine.SetPaused(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		log.Printf("paused: %v", g.engine.TogglePause())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.engine.Randomize(); err != nil {
			return err
		}
		g.engine.Normalize(SettleGenerations)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		killed, err := g.engine.KillSample(g.engine.KillFraction())
		if err != nil {
			return err
		}
		log.Printf("killed %d cells", killed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.engine.Grid().Clear()
	}

	g.handleMouse()

	stepped := false
	if g.tickOnce {
		g.engine.StepOnce()
		g.tickOnce = false
		stepped = true
	} else if !g.engine.Paused() {
		g.engine.Step()
		stepped = true
	}
	if stepped {
		now := time.Now()
		if !g.lastStep.IsZero() {
			g.stats.Update(g.engine.Generation(), g.engine.Population(), now.Sub(g.lastStep))
		}
		g.lastStep = now
	}
	return nil
}

// handleMouse turns the sampled cursor track into toggle and line commands.
// A click latches the toggled state as the draw value; dragging rasterizes a
// segment between consecutive samples so fast strokes stay continuous.
func (g *Game) handleMouse() {
	x, y := g.cellAt(ebiten.CursorPosition())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.drawAlive = g.engine.ToggleCell(x, y)
		g.drawing = true
	case g.drawing:
		held := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
		if held || released {
			g.engine.DrawLine(g.prevX, g.prevY, x, y, g.drawAlive)
		}
		if released || !held {
			g.drawing = false
		}
	}
	g.prevX, g.prevY = x, y
}

// cellAt clamps a screen position onto the board, so the engine never sees
// out-of-range coordinates.
func (g *Game) cellAt(sx, sy int) (int, int) {
	size := g.engine.Grid().Size()
	x := min(max(sx/g.scale, 0), size.W-1)
	y := min(max(sy/g.scale, 0), size.H-1)
	return x, y
}

// Draw renders the current board and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Grid().Cells(), g.scale)
	g.hud.Draw(screen, ui.Status{
		Generation: g.engine.Generation(),
		Population: g.engine.Population(),
		GenPerSec:  g.stats.GenerationsPerSecond,
		Paused:     g.engine.Paused(),
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.engine.Grid().Size()
	return size.W * g.scale, size.H * g.scale
}
