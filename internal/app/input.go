package app

import (
	"math"

	"mad-sand/internal/sand"
)

// CellAt converts a cursor position in screen pixels to grid coordinates by
// flooring the division by the cell size. Negative positions map to negative
// cells so the simulation can ignore them.
func CellAt(x, y float64, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	s := float64(scale)
	return int(math.Floor(x / s)), int(math.Floor(y / s))
}

// FrameInput builds the simulation input for one frame of mouse state.
func FrameInput(place, erase bool, x, y float64, scale int) sand.Input {
	col, row := CellAt(x, y, scale)
	return sand.Input{Place: place, Erase: erase, Column: col, Row: row}
}
