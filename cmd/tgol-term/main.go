package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/twhiting/tgol/internal/app"
	"github.com/twhiting/tgol/internal/core"
	"github.com/twhiting/tgol/internal/life"
	"github.com/twhiting/tgol/internal/render"
	"github.com/twhiting/tgol/internal/ui"
)

const frameRate = 60 // screen refreshes per second; steps are gated separately

func main() {
	cfg := app.NewConfig()
	// Terminal cells are bigger than pixels; default to a board that fits.
	cfg.Width, cfg.Height, cfg.TPS = 120, 40, 15
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file (overrides flags)")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	engine, err := life.NewEngine(cfg.EngineOptions())
	if err != nil {
		log.Fatal(err)
	}
	if err := engine.Randomize(); err != nil {
		log.Fatal(err)
	}
	engine.Normalize(app.SettleGenerations)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	if err := run(screen, engine, cfg); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
}

func run(screen tcell.Screen, engine *life.Engine, cfg *app.Config) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frames := time.NewTicker(time.Second / frameRate)
	defer frames.Stop()
	steps := core.NewFixedStep(cfg.TPS)
	stats := app.NewStats()
	lastStep := time.Now()

	// drag stroke state
	var (
		drawing   bool
		drawAlive bool
		prevX     int
		prevY     int
	)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					engine.SetPaused(true)
				case ev.Rune() == 'p':
					engine.TogglePause()
				case ev.Rune() == 'n':
					engine.StepOnce()
				case ev.Rune() == 'r':
					if err := engine.Randomize(); err != nil {
						return err
					}
					engine.Normalize(app.SettleGenerations)
				case ev.Rune() == 'k':
					if _, err := engine.KillSample(engine.KillFraction()); err != nil {
						return err
					}
				case ev.Rune() == 'c':
					engine.Grid().Clear()
				}
			case *tcell.EventMouse:
				mx, my := ev.Position()
				x, y := clampCell(engine.Grid(), mx, my-1) // row 0 is the status line
				if ev.Buttons()&tcell.Button1 != 0 {
					if !drawing {
						drawAlive = engine.ToggleCell(x, y)
						drawing = true
					} else {
						engine.DrawLine(prevX, prevY, x, y, drawAlive)
					}
				} else {
					drawing = false
				}
				prevX, prevY = x, y
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-frames.C:
			if steps.ShouldStep() && !engine.Paused() {
				engine.Step()
				now := time.Now()
				stats.Update(engine.Generation(), engine.Population(), now.Sub(lastStep))
				lastStep = now
			}
			draw(screen, engine, stats)
		}
	}
}

// clampCell maps a screen position onto the board, so the engine never sees
// out-of-range coordinates.
func clampCell(g *life.Grid, x, y int) (int, int) {
	x = min(max(x, 0), g.Width()-1)
	y = min(max(y, 0), g.Height()-1)
	return x, y
}

func draw(screen tcell.Screen, engine *life.Engine, stats *app.Stats) {
	screen.Clear()

	status := ui.Status{
		Generation: engine.Generation(),
		Population: engine.Population(),
		GenPerSec:  stats.GenerationsPerSecond,
		Paused:     engine.Paused(),
	}
	putString(screen, 0, 0, status.Line())

	grid := engine.Grid()
	cells := grid.Cells()
	for y := 0; y < grid.Height(); y++ {
		row := y * grid.Width()
		for x := 0; x < grid.Width(); x++ {
			c := cells[row+x]
			ch := ' '
			switch {
			case c.Alive:
				ch = '█'
			case c.Heat > 0:
				ch = '▒'
			default:
				continue
			}
			col := render.CellColor(c)
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
			screen.SetContent(x, y+1, ch, nil, style)
		}
	}
	screen.Show()
}

func putString(screen tcell.Screen, x, y int, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
