package sand

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// TintBuckets is the number of distinct hues colored sand cycles through.
	TintBuckets = 64

	displayEmpty      = 0
	displaySand       = 1
	displayTintOffset = 2

	tintSaturation = 0.30
	tintValue      = 0.85
	// hueStep advances the spawn hue per colored particle, so one full
	// cycle takes 1/hueStep particles.
	hueStep = 0.0002
)

var (
	backgroundColor = color.RGBA{A: 255}
	tintPalette     = buildTintPalette()
	sandPalette     = buildPalette()
)

func buildTintPalette() []color.RGBA {
	out := make([]color.RGBA, TintBuckets)
	for i := range out {
		hue := float64(i) / TintBuckets * 360
		r, g, b := colorful.Hsv(hue, tintSaturation, tintValue).RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, displayTintOffset+TintBuckets)
	palette[displayEmpty] = backgroundColor
	palette[displaySand] = sandColor
	copy(palette[displayTintOffset:], tintPalette)
	return palette
}

func tintColor(t uint8) color.RGBA {
	return tintPalette[int(t)%TintBuckets]
}

// tintFor maps a hue in [0, 1) to its bucket.
func tintFor(hue float64) uint8 {
	b := int(hue * TintBuckets)
	if b < 0 {
		b = 0
	}
	if b >= TintBuckets {
		b = TintBuckets - 1
	}
	return uint8(b)
}

// Palette returns the display palette indexed by encodeDisplay values.
func Palette() []color.RGBA { return sandPalette }

func encodeDisplay(c Cell) uint8 {
	if !c.Enabled {
		return displayEmpty
	}
	if c.Kind == ColoredSand {
		return displayTintOffset + c.Tint%TintBuckets
	}
	return displaySand
}
