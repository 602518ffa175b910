package sand

import "strconv"

const maxRadius = 16

// Config controls the sand world dimensions and brush defaults.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Radius is the initial drop radius of the brush square.
	Radius int
	// DuneHeight, when positive, lets Reset pile a noise-shaped dune of up
	// to this many rows along the floor.
	DuneHeight int

	Kind Kind
}

// DefaultConfig returns the standard configuration: a 240x240 grid, the size
// of a 1200px window drawn with 5px cells.
func DefaultConfig() Config {
	return Config{
		Width:  240,
		Height: 240,
		Seed:   1337,
		Kind:   Sand,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Radius = min(parsed, maxRadius)
		}
	}
	if v, ok := cfg["dunes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.DuneHeight = parsed
		}
	}
	if c.DuneHeight > c.Height {
		c.DuneHeight = c.Height
	}
	if v, ok := cfg["kind"]; ok {
		if k, ok := ParseKind(v); ok {
			c.Kind = k
		}
	}
	return c
}
