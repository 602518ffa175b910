package sand

import (
	"image/color"

	"mad-sand/internal/core"
)

// World owns the double-buffered grids, the shared coin and the brush
// settings of a falling-sand simulation.
type World struct {
	cfg Config

	cur  *Grid
	next *Grid

	rng  *core.RNG
	coin Coin

	kind   Kind
	radius int
	hue    float64

	display *core.ByteGrid
	dirty   bool

	frame   int
	changed bool
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. The
// world starts empty; call Reset to seed dunes.
func NewWithConfig(cfg Config) *World {
	if !cfg.Kind.Valid() {
		cfg.Kind = Sand
	}
	w := &World{
		cfg:    cfg,
		cur:    NewGrid(cfg.Width, cfg.Height),
		next:   NewGrid(cfg.Width, cfg.Height),
		rng:    core.NewRNG(cfg.Seed),
		kind:   cfg.Kind,
		radius: max(0, min(cfg.Radius, maxRadius)),
		dirty:  true,
	}
	w.cfg.Width = w.cur.Columns()
	w.cfg.Height = w.cur.Rows()
	w.coin = w.rng
	w.display = core.NewByteGrid(w.cfg.Width, w.cfg.Height)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Grid exposes the current buffer. It is replaced on every Step.
func (w *World) Grid() *Grid { return w.cur }

// SetCoin replaces the random source shared by the brush and the physics
// pass. Passing nil restores the world's seeded RNG.
func (w *World) SetCoin(c Coin) {
	if c == nil {
		c = w.rng
	}
	w.coin = c
}

// Reset clears both buffers, reseeds the RNG and piles dunes when configured.
// A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.cur.Clear()
	w.next.Clear()
	w.hue = 0
	w.frame = 0
	w.changed = false
	if w.cfg.DuneHeight > 0 {
		pileDunes(w.cur, w.cfg.DuneHeight, effective)
	}
	w.dirty = true
}

// Apply mutates the current buffer with one frame of input. It reports
// whether the input addressed any cell of the grid; the display buffer is
// rebuilt on the next Cells call when it did.
func (w *World) Apply(in Input) bool {
	hit := w.brush().Apply(w.cur, in, w.coin)
	if hit {
		w.dirty = true
	}
	return hit
}

// Step computes the next frame and swaps the buffers.
func (w *World) Step() {
	Step(w.cur, w.next, w.coin)
	w.changed = !w.cur.SameOccupancy(w.next)
	w.cur, w.next = w.next, w.cur
	w.frame++
	w.dirty = true
}

// Frame returns how many steps have run since the last Reset.
func (w *World) Frame() int { return w.frame }

// Changed reports whether the last Step moved, merged or removed any particle.
func (w *World) Changed() bool { return w.changed }

// Count returns the number of particles in the current buffer.
func (w *World) Count() int { return w.cur.Count() }

// Enabled reports whether (col, row) holds a particle.
func (w *World) Enabled(col, row int) bool { return w.cur.Occupied(col, row) }

// Color returns the draw color of the particle at (col, row). The second
// result is false for empty or out-of-range cells.
func (w *World) Color(col, row int) (color.RGBA, bool) {
	c, ok := w.cur.At(col, row)
	if !ok || !c.Enabled {
		return color.RGBA{}, false
	}
	return c.Color(), true
}

// Cells exposes the palette-indexed display buffer of the current frame.
func (w *World) Cells() []uint8 {
	if w.dirty {
		w.rebuildDisplay()
	}
	return w.display.Cells()
}

// Palette exposes the colors indexed by Cells.
func (w *World) Palette() []color.RGBA { return Palette() }

// Kind returns the material placed by the brush.
func (w *World) Kind() Kind { return w.kind }

// SetKind selects the material placed by the brush.
func (w *World) SetKind(k Kind) {
	if k.Valid() {
		w.kind = k
	}
}

// CycleKind selects the next material and returns it.
func (w *World) CycleKind() Kind {
	w.kind = w.kind.Next()
	return w.kind
}

// Radius returns the drop radius of the brush square.
func (w *World) Radius() int { return w.radius }

// SetRadius sets the drop radius, clamped to [0, 16].
func (w *World) SetRadius(r int) {
	w.radius = max(0, min(r, maxRadius))
}

// Fill turns every cell into a fresh particle of the selected kind.
func (w *World) Fill() {
	b := w.brush()
	for col := 0; col < w.cur.Columns(); col++ {
		for row := 0; row < w.cur.Rows(); row++ {
			w.cur.Update(col, row, b.stamp)
		}
	}
	w.dirty = true
}

// Clear removes every particle.
func (w *World) Clear() {
	w.cur.Clear()
	w.display.Clear()
	w.dirty = false
}

func (w *World) brush() Brush {
	b := Brush{Kind: w.kind, Radius: w.radius}
	if w.kind == ColoredSand {
		b.Tint = w.nextTint
	}
	return b
}

func (w *World) nextTint() uint8 {
	t := tintFor(w.hue)
	w.hue += hueStep
	if w.hue > 1 {
		w.hue = 0
	}
	return t
}

func (w *World) rebuildDisplay() {
	for row := 0; row < w.cur.Rows(); row++ {
		for col := 0; col < w.cur.Columns(); col++ {
			w.display.Set(col, row, encodeDisplay(w.cur.cells[w.cur.index(col, row)]))
		}
	}
	w.dirty = false
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
