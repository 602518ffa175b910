package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"mad-sand/internal/audio"
	"mad-sand/internal/log"
	"mad-sand/internal/sand"
	"mad-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	tps := flag.Int("tps", 30, "ticks per second")
	seed := flag.Int64("seed", sand.DefaultConfig().Seed, "seed for simulation reset")
	dunes := flag.Int("dunes", 0, "maximum dune height piled on reset (0 disables)")
	kind := flag.String("kind", "sand", "initial material (sand, colored_sand)")
	sound := flag.Bool("sound", false, "play a tick while pouring")
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is busy drawing)")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error, none)")
	flag.Parse()

	if err := run(*tps, *seed, *dunes, *kind, *sound, *logFile, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(tps int, seed int64, dunes int, kind string, sound bool, logFile, logLevel string) error {
	logger := log.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.New(f, log.LevelFromString(logLevel))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	cols, rows := term.GridSize(w, h)
	cfg := sand.FromMap(map[string]string{
		"w":     strconv.Itoa(cols),
		"h":     strconv.Itoa(rows),
		"seed":  strconv.FormatInt(seed, 10),
		"dunes": strconv.Itoa(dunes),
		"kind":  kind,
	})
	world := sand.NewWithConfig(cfg)
	world.Reset(seed)
	logger.Infof("terminal %dx%d, grid %dx%d", w, h, cols, rows)

	var pourer term.Pourer
	if sound {
		p, err := audio.New()
		if err != nil {
			logger.Warnf("audio disabled: %v", err)
		} else {
			defer p.Close()
			pourer = p
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return term.New(screen, world, tps, seed, logger, pourer).Run(ctx)
}
