package sand

import "image/color"

// Cell is the state of one grid position.
type Cell struct {
	Enabled  bool
	Velocity int
	Kind     Kind
	// Tint is the hue bucket of a colored sand particle; it moves with the
	// particle and is ignored for other kinds.
	Tint uint8
}

// DefaultCell returns an empty cell ready to accept a falling particle.
func DefaultCell() Cell {
	return Cell{Velocity: 1, Kind: Sand}
}

// Reset restores the cell to its default state.
func (c *Cell) Reset() {
	*c = DefaultCell()
}

// Color returns the color a renderer should use for the cell's particle.
func (c Cell) Color() color.RGBA {
	if c.Kind == ColoredSand {
		return tintColor(c.Tint)
	}
	return c.Kind.Color()
}
