package sand

import (
	"image/color"
	"strings"
)

// Kind tags the material of an occupied cell.
type Kind uint8

const (
	Sand Kind = iota
	ColoredSand

	kindCount
)

var sandColor = color.RGBA{R: 194, G: 178, B: 128, A: 255}

// Name returns the display name of the kind.
func (k Kind) Name() string {
	switch k {
	case Sand:
		return "Sand"
	case ColoredSand:
		return "Colored Sand"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Name() }

// Color returns the base color drawn for the kind. Colored sand particles are
// drawn with their own tint instead, see Cell.Color.
func (k Kind) Color() color.RGBA {
	switch k {
	case ColoredSand:
		return tintColor(0)
	default:
		return sandColor
	}
}

// Next cycles to the following kind, wrapping after the last one.
func (k Kind) Next() Kind {
	return (k + 1) % kindCount
}

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool { return k < kindCount }

// ParseKind resolves a kind from its name, ignoring case, spaces and
// underscores.
func ParseKind(s string) (Kind, bool) {
	norm := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
	for k := Kind(0); k < kindCount; k++ {
		if strings.ReplaceAll(strings.ToLower(k.Name()), " ", "") == norm {
			return k, true
		}
	}
	return Sand, false
}
