//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"mad-sand/internal/core"
	"mad-sand/internal/log"
	"mad-sand/internal/render"
	"mad-sand/internal/sand"
	"mad-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sandbox is the interactive surface of sims that accept brush input.
type sandbox interface {
	Apply(sand.Input) bool
	Kind() sand.Kind
	CycleKind() sand.Kind
	Fill()
	Clear()
	Radius() int
	SetRadius(int)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	box     sandbox
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *log.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, logger *log.Logger) *Game {
	size := sim.Size()
	g := &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		log:      logger,
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
	if box, ok := sim.(sandbox); ok {
		g.box = box
	}
	if g.hudWidth > 0 {
		g.hud = ui.NewHUD(sim, g.hudWidth)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.log.Infof("reset %s with seed %d", g.sim.Name(), seed)
}

// Update reads input, applies it to the current grid and advances the
// simulation by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.box != nil {
		g.handleSandbox()
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.viewWidth())
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleSandbox() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		k := g.box.CycleKind()
		g.log.Debugf("dropping %s", k.Name())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.box.Fill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.box.Clear()
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		step := 1
		if dy < 0 {
			step = -1
		}
		g.box.SetRadius(g.box.Radius() + step)
	}

	x, y := ebiten.CursorPosition()
	if x >= g.viewWidth() {
		return
	}
	place := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !place && !erase {
		return
	}
	g.box.Apply(FrameInput(place, erase, float64(x), float64(y), g.scale))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := render.BinaryPalette(color.White, color.Black)
	if p, ok := g.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.box != nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Currently dropping: %s", g.box.Kind().Name()), 4, 4)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused", 4, 20)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.viewWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.viewWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
