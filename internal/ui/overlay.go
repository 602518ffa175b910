//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-sand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type radiusProvider interface {
	Radius() int
}

// Overlay outlines the drop square under the cursor when the brush radius is
// positive. Key B toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	provider, ok := o.sim.(radiusProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	x, y := ebiten.CursorPosition()
	size := o.sim.Size()
	if x < 0 || y < 0 || x >= size.W*scale || y >= size.H*scale {
		return
	}
	rect := brushSquare(x/scale, y/scale, provider.Radius(), scale)
	if rect.Empty() {
		return
	}
	outline := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	fillRect(screen, o.pixel, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), outline)
	fillRect(screen, o.pixel, image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y), outline)
	fillRect(screen, o.pixel, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), outline)
	fillRect(screen, o.pixel, image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y), outline)
}

// fillRect paints rect on dst by stretching a single white pixel.
func fillRect(dst, pixel *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(pixel, op)
}
