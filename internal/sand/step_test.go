package sand

import (
	"slices"
	"testing"
)

func cellAt(t *testing.T, g *Grid, col, row int) Cell {
	t.Helper()
	c, ok := g.At(col, row)
	if !ok {
		t.Fatalf("cell (%d,%d) out of range", col, row)
	}
	return c
}

func TestFreeFallAdvancesByVelocity(t *testing.T) {
	cur := NewGrid(5, 10)
	next := NewGrid(5, 10)
	enable(cur, 2, 1, 3)

	Step(cur, next, fixedCoin(false))

	expectOccupied(t, next, [2]int{2, 4})
	if c := cellAt(t, next, 2, 4); c.Velocity != 4 {
		t.Fatalf("expected velocity 4 after falling, got %d", c.Velocity)
	}
}

func TestFreeFallAcceleratesEachFrame(t *testing.T) {
	cur := NewGrid(1, 20)
	next := NewGrid(1, 20)
	enable(cur, 0, 0, 1)

	wantRows := []int{1, 3, 6, 10, 15}
	for i, want := range wantRows {
		Step(cur, next, fixedCoin(false))
		cur, next = next, cur
		expectOccupied(t, cur, [2]int{0, want})
		if c := cellAt(t, cur, 0, want); c.Velocity != i+2 {
			t.Fatalf("frame %d: expected velocity %d, got %d", i, i+2, c.Velocity)
		}
	}
}

func TestFreeFallStopsAboveBlocker(t *testing.T) {
	cur := NewGrid(5, 5)
	next := NewGrid(5, 5)
	enable(cur, 2, 2, 3)
	enable(cur, 2, 4, 1)

	Step(cur, next, fixedCoin(false))

	expectOccupied(t, next, [2]int{2, 3}, [2]int{2, 4})
	if c := cellAt(t, next, 2, 3); c.Velocity != 1 {
		t.Fatalf("particle caught by a blocker should restart at velocity 1, got %d", c.Velocity)
	}
}

func TestFreeFallClampsToLastRow(t *testing.T) {
	cur := NewGrid(1, 10)
	next := NewGrid(1, 10)
	enable(cur, 0, 7, 5)

	Step(cur, next, fixedCoin(false))

	expectOccupied(t, next, [2]int{0, 9})
	if c := cellAt(t, next, 0, 9); c.Velocity != 1 {
		t.Fatalf("clamped particle should restart at velocity 1, got %d", c.Velocity)
	}
}

func TestLastRowIsStable(t *testing.T) {
	cur := NewGrid(3, 4)
	next := NewGrid(3, 4)
	enable(cur, 1, 3, 6)

	for i := 0; i < 10; i++ {
		Step(cur, next, fixedCoin(i%2 == 0))
		cur, next = next, cur
		expectOccupied(t, cur, [2]int{1, 3})
	}
	if c := cellAt(t, cur, 1, 3); c.Velocity != 1 {
		t.Fatalf("resting particle velocity = %d, want 1", c.Velocity)
	}
}

func TestBlockedParticleSettlesLeft(t *testing.T) {
	cur := NewGrid(3, 3)
	next := NewGrid(3, 3)
	enable(cur, 1, 1, 1)
	enable(cur, 1, 2, 1)
	enable(cur, 2, 2, 1)

	Step(cur, next, fixedCoin(true))

	expectOccupied(t, next, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
}

func TestBlockedParticleSettlesRight(t *testing.T) {
	cur := NewGrid(3, 3)
	next := NewGrid(3, 3)
	enable(cur, 1, 1, 1)
	enable(cur, 1, 2, 1)
	enable(cur, 0, 2, 1)

	Step(cur, next, fixedCoin(false))

	expectOccupied(t, next, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
}

func TestBlockedParticleUsesCoinWhenBothSidesOpen(t *testing.T) {
	for _, tc := range []struct {
		coin bool
		want [2]int
	}{
		{coin: false, want: [2]int{0, 2}},
		{coin: true, want: [2]int{2, 2}},
	} {
		cur := NewGrid(3, 3)
		next := NewGrid(3, 3)
		enable(cur, 1, 1, 1)
		enable(cur, 1, 2, 1)

		Step(cur, next, fixedCoin(tc.coin))

		expectOccupied(t, next, tc.want, [2]int{1, 2})
	}
}

func TestBlockedParticleStaysWhenBothSidesFull(t *testing.T) {
	cur := NewGrid(3, 3)
	next := NewGrid(3, 3)
	enable(cur, 1, 1, 1)
	for col := 0; col < 3; col++ {
		enable(cur, col, 2, 1)
	}

	Step(cur, next, fixedCoin(true))

	expectOccupied(t, next, [2]int{1, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
}

func TestBlockedAtEdgeTreatsOutsideAsFull(t *testing.T) {
	cur := NewGrid(2, 2)
	next := NewGrid(2, 2)
	enable(cur, 0, 0, 1)
	enable(cur, 0, 1, 1)
	enable(cur, 1, 1, 1)

	Step(cur, next, fixedCoin(false))

	expectOccupied(t, next, [2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1})
}

func TestCoinDrawnOnlyForBlockedParticles(t *testing.T) {
	cur := NewGrid(4, 6)
	next := NewGrid(4, 6)
	enable(cur, 0, 0, 1) // free fall
	enable(cur, 2, 4, 1) // blocked by the particle below
	enable(cur, 2, 5, 1) // resting on the floor

	coin := &countingCoin{}
	Step(cur, next, coin)

	if coin.n != 1 {
		t.Fatalf("expected exactly one coin flip, got %d", coin.n)
	}
}

func TestStepLeavesCurrentUntouchedAndClearsNext(t *testing.T) {
	cur := NewGrid(4, 4)
	next := NewGrid(4, 4)
	enable(cur, 1, 0, 2)
	for col := 0; col < 4; col++ {
		enable(next, col, 0, 5)
	}
	before := slices.Clone(cur.cells)

	Step(cur, next, fixedCoin(false))

	if !slices.Equal(before, cur.cells) {
		t.Fatal("Step must not modify the current grid")
	}
	expectOccupied(t, next, [2]int{1, 2})
}

func TestStepNeverCreatesParticles(t *testing.T) {
	w := New(24, 24)
	w.Reset(5)
	for frame := 0; frame < 120; frame++ {
		if frame < 40 {
			w.Apply(Input{Place: true, Column: 12, Row: 2})
		}
		before := w.Count()
		w.Step()
		if after := w.Count(); after > before {
			t.Fatalf("frame %d: particle count grew from %d to %d", frame, before, after)
		}
	}
}

func TestParticleKeepsKindAndTint(t *testing.T) {
	cur := NewGrid(2, 4)
	next := NewGrid(2, 4)
	cur.Update(0, 0, func(c *Cell) {
		c.Enabled = true
		c.Kind = ColoredSand
		c.Tint = 42
	})

	Step(cur, next, fixedCoin(false))

	c := cellAt(t, next, 0, 1)
	if !c.Enabled || c.Kind != ColoredSand || c.Tint != 42 {
		t.Fatalf("particle lost its material: %+v", c)
	}
}
