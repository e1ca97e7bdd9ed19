//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"
	"strings"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sims/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(map[string]string{
		"w":      strconv.Itoa(cfg.Width),
		"h":      strconv.Itoa(cfg.Height),
		"seed":   strconv.FormatInt(cfg.Seed, 10),
		"config": cfg.ConfigFile,
	})
	sim.Reset(cfg.Seed)

	world, ok := sim.(*sandbox.World)
	if !ok {
		log.Fatalf("sim %q is not a sandbox world", cfg.Sim)
	}

	game := app.New(world, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sandfall: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
