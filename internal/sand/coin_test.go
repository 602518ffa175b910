package sand

import "testing"

// fixedCoin always lands the same way.
type fixedCoin bool

func (c fixedCoin) Bool() bool { return bool(c) }

// countingCoin records how many times it was flipped.
type countingCoin struct {
	n     int
	value bool
}

func (c *countingCoin) Bool() bool {
	c.n++
	return c.value
}

func enable(g *Grid, col, row, velocity int) {
	g.Update(col, row, func(c *Cell) {
		c.Reset()
		c.Enabled = true
		c.Velocity = velocity
	})
}

func occupied(g *Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for col := 0; col < g.Columns(); col++ {
		for row := 0; row < g.Rows(); row++ {
			if g.Occupied(col, row) {
				out[[2]int{col, row}] = true
			}
		}
	}
	return out
}

func expectOccupied(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	got := occupied(g)
	if len(got) != len(want) {
		t.Fatalf("expected %d particles %v, got %d: %v", len(want), want, len(got), got)
	}
	for _, p := range want {
		if !got[p] {
			t.Fatalf("expected particle at %v, got %v", p, got)
		}
	}
}
