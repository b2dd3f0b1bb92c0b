//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"bitlife/internal/app"
	"bitlife/internal/core"
	_ "bitlife/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("configure %s: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.TPS, cfg.MaxGenerations)
	size := sim.Size()

	ebiten.SetWindowTitle("bitlife — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
