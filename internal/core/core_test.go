package core

import (
	"slices"
	"testing"
	"time"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("expected clamped 1x1 grid, got %dx%d", g.W, g.H)
	}

	g = NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	if g.InBounds(0, 2) || !g.InBounds(2, 1) {
		t.Fatalf("unexpected bounds for a 3x2 grid")
	}
	if g.Index(2, 1) != 5 {
		t.Fatalf("Index(2,1) = %d, want 5", g.Index(2, 1))
	}
	if !slices.Equal(g.Cells(), []uint8{0, 0, 0, 0, 0, 7}) {
		t.Fatalf("unexpected cells %v", g.Cells())
	}

	g.Clear()
	if !slices.Equal(g.Cells(), make([]uint8, 6)) {
		t.Fatalf("clear left %v", g.Cells())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}

	first := make([]bool, 16)
	a.Seed(5)
	for i := range first {
		first[i] = a.Bool()
	}
	a.Seed(5)
	for i := range first {
		if a.Bool() != first[i] {
			t.Fatalf("reseeding did not restart the sequence at draw %d", i)
		}
	}

	a.Seed(7)
	b.Seed(7)
	if a.Int64() != b.Int64() || a.Int64() < 0 {
		t.Fatalf("Int64 should be deterministic and non-negative")
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstTickImmediate(t *testing.T) {
	fs, clock := newTestStep(10)
	if fs.Due() != 1 {
		t.Fatalf("expected the first call to step")
	}
	if fs.Due() != 0 {
		t.Fatalf("expected no second step without elapsed time")
	}
	clock.t = clock.t.Add(100 * time.Millisecond)
	if fs.Due() != 1 {
		t.Fatalf("expected a step after one interval")
	}
}

func TestFixedStepDueCapsCatchUp(t *testing.T) {
	fs, clock := newTestStep(10)
	if got := fs.Due(); got != 1 {
		t.Fatalf("Due() = %d on start, want 1", got)
	}
	clock.t = clock.t.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 2 {
		t.Fatalf("Due() = %d after 250ms, want 2", got)
	}
	clock.t = clock.t.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("Due() = %d after carry-over, want 1", got)
	}

	clock.t = clock.t.Add(10 * time.Second)
	if got := fs.Due(); got != maxCatchUp {
		t.Fatalf("Due() = %d after stall, want %d", got, maxCatchUp)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due() = %d after capped catch-up, want 0", got)
	}
}

func TestFixedStepDefaultTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("Interval() = %s, want 1/60s", fs.Interval())
	}
}

func TestRegistryNames(t *testing.T) {
	Register("", func(map[string]string) Sim { return nil })
	Register("zz-test", nil)
	for _, name := range Names() {
		if name == "" || name == "zz-test" {
			t.Fatalf("invalid registration %q was accepted", name)
		}
	}
}
