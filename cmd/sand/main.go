//go:build ebiten

package main

import (
	"errors"
	"flag"
	stdlog "log"
	"os"
	"strings"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	"mad-sand/internal/log"
	_ "mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	logger := log.New(os.Stderr, log.LevelFromString(cfg.LogLevel))

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		stdlog.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg, logger)
	size := sim.Size()
	logger.Infof("running %s on a %dx%d grid at %d TPS", sim.Name(), size.W, size.H, cfg.TPS)

	ebiten.SetWindowTitle("mad-sand: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("run %s: %v", sim.Name(), err)
		os.Exit(1)
	}
}
