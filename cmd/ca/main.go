//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cube-ca/internal/app"
	"cube-ca/internal/core"
	_ "cube-ca/internal/sims/cube"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := cfg.Params()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.Build(cfg.Sim, params)
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cube-ca: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
