//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"lifesim/internal/app"
	"lifesim/internal/life"
	"lifesim/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configFile := flag.String("config", "", "optional JSON config file (overrides flags)")
	flag.Parse()

	if *configFile != "" {
		if err := cfg.LoadFile(*configFile); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// The board starts all dead and stopped: click cells to seed a
	// pattern, press space to run.
	ctrl := sim.New(life.New(cfg.Width, cfg.Height), cfg.TickInterval)
	game := app.New(ctrl, cfg)

	ebiten.SetWindowTitle("lifesim")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
