package app

import (
	"flag"
	"strconv"

	"mad-sand/internal/sand"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Cols     int
	Rows     int
	Dunes    int
	Radius   int
	Kind     string
	HUDWidth int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults: a 1200x1200
// window of 5px sand cells.
func NewConfig() *Config {
	return &Config{
		Sim:      "sand",
		Scale:    5,
		TPS:      60,
		Seed:     sand.DefaultConfig().Seed,
		Cols:     240,
		Rows:     240,
		Kind:     "sand",
		HUDWidth: 220,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Dunes, "dunes", c.Dunes, "maximum dune height piled on reset (0 disables)")
	fs.IntVar(&c.Radius, "radius", c.Radius, "initial drop radius")
	fs.StringVar(&c.Kind, "kind", c.Kind, "initial material (sand, colored_sand)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error, none)")
}

// Normalize clamps values the frontends cannot work with.
func (c *Config) Normalize() {
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.HUDWidth < 0 {
		c.HUDWidth = 0
	}
}

// SimConfig renders the grid options as the key/value map sim factories read.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Cols),
		"h":      strconv.Itoa(c.Rows),
		"seed":   strconv.FormatInt(c.Seed, 10),
		"dunes":  strconv.Itoa(c.Dunes),
		"radius": strconv.Itoa(c.Radius),
		"kind":   c.Kind,
	}
}
