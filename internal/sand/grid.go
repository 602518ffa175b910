package sand

// Grid is a fixed-size column/row container of cells stored in row-major
// order. All coordinate access is bounds-checked; out-of-range coordinates
// read as absent and write as no-ops.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid allocates a grid with every cell in its default state.
// Non-positive dimensions are clamped to 1.
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g := &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	g.Clear()
	return g
}

// Columns returns the horizontal extent.
func (g *Grid) Columns() int { return g.cols }

// Rows returns the vertical extent.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

func (g *Grid) index(col, row int) int { return row*g.cols + col }

// At returns a copy of the cell at (col, row) and true, or the zero Cell and
// false when the coordinate lies outside the grid.
func (g *Grid) At(col, row int) (Cell, bool) {
	if !g.InBounds(col, row) {
		return Cell{}, false
	}
	return g.cells[g.index(col, row)], true
}

// Occupied reports whether (col, row) is in range and enabled.
func (g *Grid) Occupied(col, row int) bool {
	c, ok := g.At(col, row)
	return ok && c.Enabled
}

// Vacant reports whether (col, row) is in range and not enabled.
func (g *Grid) Vacant(col, row int) bool {
	c, ok := g.At(col, row)
	return ok && !c.Enabled
}

// Update applies mutate to the cell at (col, row). It reports false and does
// nothing when the coordinate is out of range.
func (g *Grid) Update(col, row int, mutate func(*Cell)) bool {
	if !g.InBounds(col, row) {
		return false
	}
	mutate(&g.cells[g.index(col, row)])
	return true
}

// Clear resets every cell to its default state.
func (g *Grid) Clear() {
	def := DefaultCell()
	for i := range g.cells {
		g.cells[i] = def
	}
}

// Count returns the number of enabled cells.
func (g *Grid) Count() int {
	n := 0
	for i := range g.cells {
		if g.cells[i].Enabled {
			n++
		}
	}
	return n
}

// SameOccupancy reports whether both grids have identical dimensions and
// enabled flags.
func (g *Grid) SameOccupancy(o *Grid) bool {
	if g.cols != o.cols || g.rows != o.rows {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Enabled != o.cells[i].Enabled {
			return false
		}
	}
	return true
}
