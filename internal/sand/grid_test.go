package sand

import "testing"

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Columns() != 4 || g.Rows() != 3 {
		t.Fatalf("unexpected size %dx%d", g.Columns(), g.Rows())
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 3; row++ {
			c, ok := g.At(col, row)
			if !ok {
				t.Fatalf("cell (%d,%d) missing", col, row)
			}
			if c != DefaultCell() {
				t.Fatalf("cell (%d,%d) = %+v, want default", col, row, c)
			}
		}
	}
	if c := DefaultCell(); c.Enabled || c.Velocity != 1 || c.Kind != Sand {
		t.Fatalf("unexpected default cell %+v", c)
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -5)
	if g.Columns() != 1 || g.Rows() != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.Columns(), g.Rows())
	}
}

func TestAtOutOfRangeIsAbsent(t *testing.T) {
	g := NewGrid(5, 4)
	coords := [][2]int{
		{-1, 0}, {0, -1}, {-1, -1}, {5, 0}, {0, 4}, {5, 4},
		{-1000, 2}, {2, 1 << 30}, {-(1 << 31), -(1 << 31)},
	}
	for _, p := range coords {
		if c, ok := g.At(p[0], p[1]); ok || c != (Cell{}) {
			t.Fatalf("At(%d,%d) = %+v, %v; want absent", p[0], p[1], c, ok)
		}
		if g.Occupied(p[0], p[1]) || g.Vacant(p[0], p[1]) {
			t.Fatalf("out-of-range (%d,%d) reported occupied or vacant", p[0], p[1])
		}
	}
}

func TestUpdateOutOfRangeIsNoop(t *testing.T) {
	g := NewGrid(3, 3)
	called := false
	if g.Update(3, 1, func(*Cell) { called = true }) {
		t.Fatal("Update outside the grid should report false")
	}
	if g.Update(-1, 1, func(*Cell) { called = true }) {
		t.Fatal("Update outside the grid should report false")
	}
	if called {
		t.Fatal("mutation must not run for out-of-range coordinates")
	}
	if g.Count() != 0 {
		t.Fatalf("expected empty grid, got %d particles", g.Count())
	}
}

func TestUpdateMutatesFieldsOnly(t *testing.T) {
	g := NewGrid(2, 2)
	g.Update(1, 1, func(c *Cell) { c.Velocity = 4 })
	g.Update(1, 1, func(c *Cell) { c.Enabled = true })
	c, _ := g.At(1, 1)
	if !c.Enabled || c.Velocity != 4 {
		t.Fatalf("expected enabled cell keeping velocity 4, got %+v", c)
	}
	if !g.Occupied(1, 1) || g.Vacant(1, 1) {
		t.Fatal("occupancy helpers disagree with cell state")
	}
}

func TestCellReset(t *testing.T) {
	c := Cell{Enabled: true, Velocity: 9, Kind: ColoredSand, Tint: 17}
	c.Reset()
	if c != DefaultCell() {
		t.Fatalf("Reset left %+v", c)
	}
}

func TestClearAndSameOccupancy(t *testing.T) {
	a := NewGrid(3, 3)
	b := NewGrid(3, 3)
	enable(a, 1, 1, 3)
	if a.SameOccupancy(b) {
		t.Fatal("grids with different particles reported equal")
	}
	enable(b, 1, 1, 1)
	if !a.SameOccupancy(b) {
		t.Fatal("occupancy should ignore velocity")
	}
	a.Clear()
	if a.Count() != 0 {
		t.Fatalf("Clear left %d particles", a.Count())
	}
	if c, _ := a.At(1, 1); c.Velocity != 1 {
		t.Fatalf("Clear should restore velocity, got %d", c.Velocity)
	}
	if a.SameOccupancy(NewGrid(3, 4)) {
		t.Fatal("grids of different size reported equal")
	}
}
