package sand

// brushReach bounds the randomized brush offsets to [-brushReach, brushReach).
const brushReach = 3

// Input is the per-frame event the presentation layer derives from raw
// mouse state. Place takes precedence over Erase.
type Input struct {
	Place  bool
	Erase  bool
	Column int
	Row    int
}

// Brush spawns and erases particles around a cursor cell.
type Brush struct {
	Kind Kind
	// Radius adds a filled square of half-width Radius around the cursor.
	// Zero leaves only the randomized cluster.
	Radius int
	// Tint supplies the hue bucket for each spawned particle. Nil means 0.
	Tint func() uint8
}

func (b Brush) stamp(c *Cell) {
	c.Reset()
	c.Enabled = true
	c.Kind = b.Kind
	if b.Tint != nil {
		c.Tint = b.Tint()
	}
}

// Spawn drops a randomized cluster of particles around (col, row). Each
// offset in [-3, 3) flips the coin once: heads spreads horizontally, tails
// vertically. The cursor cell is always spawned last. Nothing happens when
// (col, row) is outside the grid.
func (b Brush) Spawn(g *Grid, col, row int, coin Coin) bool {
	if !g.InBounds(col, row) {
		return false
	}
	for i := -brushReach; i < brushReach; i++ {
		if coin.Bool() {
			g.Update(col+i, row, b.stamp)
		} else {
			g.Update(col, row+i, b.stamp)
		}
	}
	g.Update(col, row, b.stamp)

	if b.Radius > 0 {
		b.square(g, col, row, func(c *Cell) {
			if c.Enabled {
				return
			}
			b.stamp(c)
		})
	}
	return true
}

// Erase disables the cell at (col, row) and, with a radius, the surrounding
// square. Out-of-range cells are ignored. It reports whether any cell of the
// grid was addressed, so a square clipped by the edge still counts when the
// cursor itself is off the grid.
func (b Brush) Erase(g *Grid, col, row int) bool {
	hit := g.Update(col, row, disable)
	if b.Radius > 0 && b.square(g, col, row, disable) {
		hit = true
	}
	return hit
}

// Apply evaluates one frame of input against g and reports whether the grid
// was touched.
func (b Brush) Apply(g *Grid, in Input, coin Coin) bool {
	if in.Place {
		return b.Spawn(g, in.Column, in.Row, coin)
	}
	if in.Erase {
		return b.Erase(g, in.Column, in.Row)
	}
	return false
}

// square applies mutate across the drop square and reports whether any of it
// lies inside the grid.
func (b Brush) square(g *Grid, col, row int, mutate func(*Cell)) bool {
	hit := false
	for c := col - b.Radius; c <= col+b.Radius; c++ {
		for r := row - b.Radius; r <= row+b.Radius; r++ {
			if g.Update(c, r, mutate) {
				hit = true
			}
		}
	}
	return hit
}

func disable(c *Cell) { c.Enabled = false }
