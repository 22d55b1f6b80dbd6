//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-ca/internal/app"
	"life-ca/internal/fsutil"
	"life-ca/internal/patterns"
	"life-ca/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	lc := life.FromMap(cfg.SimParams())

	var pattern *life.Pattern
	if cfg.Pattern != "" {
		p, err := patterns.Load(fsutil.OSFileSystem{}, cfg.Pattern)
		if err != nil {
			log.Fatal(err)
		}
		pattern = &p
	}

	sim, err := life.NewSim(lc, pattern)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, lc.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("life-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
