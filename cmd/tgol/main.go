//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/twhiting/tgol/internal/app"
	"github.com/twhiting/tgol/internal/life"
)

func main() {
	cfg := app.NewConfig()
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

	game := app.New(engine, cfg.Scale)

	ebiten.SetWindowTitle(fmt.Sprintf("tgol [%d x %d]", cfg.Width, cfg.Height))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
