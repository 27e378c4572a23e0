//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dla-ca/internal/app"
	"dla-ca/internal/sims/dla"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Height <= 0 {
		cfg.Height = cfg.Width
	}
	kind, ok := dla.ParseSeedKind(cfg.SeedKind)
	if !ok {
		log.Fatalf("unknown seed kind %q", cfg.SeedKind)
	}

	sim := dla.New(dla.Config{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Particles: cfg.Particles,
		Seed:      cfg.Seed,
		SeedKind:  kind,
	})
	shared := dla.NewShared(sim)
	shared.StartWorker()

	game := app.New(shared, cfg.Scale, cfg.SaveFile)

	ebiten.SetWindowTitle("dla-ca — " + kind.String())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
