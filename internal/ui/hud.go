//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"mad-sand/internal/core"
	"mad-sand/internal/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonText   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disabledFill = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledText = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// materialControls is implemented by sims with a selectable material.
type materialControls interface {
	Kind() sand.Kind
	CycleKind() sand.Kind
	Fill()
	Clear()
}

type hudButton struct {
	label   string
	rect    image.Rectangle
	enabled func() bool
	press   func()
}

type hudRow struct {
	label   string
	value   func() string
	top     int
	buttons []hudButton
}

// HUD renders a control panel to the right of the sand view: the material
// picker, grid actions, integer controls and a read-only parameter list.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	title    string
	rows     []hudRow
	snapshot core.ParameterSnapshot
	offsetX  int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(0, width), title: buildTitle(sim)}
	if h.width == 0 {
		return h
	}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	if m, ok := sim.(materialControls); ok {
		h.addRow("Material", func() string { return m.Kind().Name() },
			hudButton{label: ">", press: func() { m.CycleKind() }})
		h.addRow("Grid", nil,
			hudButton{label: "Fill", press: m.Fill},
			hudButton{label: "Clear", press: m.Clear})
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		setter, _ := sim.(core.IntParameterSetter)
		for _, ctrl := range provider.ParameterControls() {
			h.addIntRow(ctrl, setter)
		}
	}
	return h
}

func (h *HUD) addRow(label string, value func() string, buttons ...hudButton) {
	top := rowsTop + len(h.rows)*rowHeight
	widths := make([]int, len(buttons))
	for i, b := range buttons {
		widths[i] = buttonWidth(b.label)
	}
	for i, r := range layoutButtons(h.width, top, widths) {
		buttons[i].rect = r
	}
	h.rows = append(h.rows, hudRow{label: label, value: value, top: top, buttons: buttons})
}

func (h *HUD) addIntRow(ctrl core.ParameterControl, setter core.IntParameterSetter) {
	current := func() (int, bool) {
		param, ok := h.snapshot.Lookup(ctrl.Key)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(param.Value)
		return v, err == nil
	}
	step := func(direction int) hudButton {
		label := "+"
		if direction < 0 {
			label = "-"
		}
		return hudButton{
			label: label,
			enabled: func() bool {
				v, ok := current()
				return ok && setter != nil && adjustedValue(ctrl, v, direction) != v
			},
			press: func() {
				v, ok := current()
				if !ok || setter == nil {
					return
				}
				setter.SetIntParameter(ctrl.Key, adjustedValue(ctrl, v, direction))
			},
		}
	}
	value := func() string {
		if v, ok := current(); ok {
			return strconv.Itoa(v)
		}
		return "--"
	}
	h.addRow(ctrl.Label, value, step(-1), step(1))
}

// Update refreshes the parameter snapshot and handles clicks inside the
// panel, which starts at panelOffsetX in screen space.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for _, row := range h.rows {
		for _, b := range row.buttons {
			if pointInRect(px, my, b.rect) && b.isEnabled() {
				b.press()
				h.refresh()
				return
			}
		}
	}
}

func (h *HUD) refresh() {
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
}

func (b hudButton) isEnabled() bool { return b.enabled == nil || b.enabled() }

// Draw paints the panel at offsetX next to the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(1, scale)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, headerColor)
	for _, row := range h.rows {
		h.drawRow(row)
	}
	h.drawSnapshot(rowsTop + len(h.rows)*rowHeight + infoLine)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(row hudRow) {
	face := basicfont.Face7x13
	y := row.top + labelBaseline
	text.Draw(h.panel, row.label, face, panelPadding, y, labelColor)
	if row.value != nil && len(row.buttons) > 0 {
		v := row.value()
		x := row.buttons[0].rect.Min.X - buttonGap - text.BoundString(face, v).Dx()
		text.Draw(h.panel, v, face, x, y, labelColor)
	}
	for _, b := range row.buttons {
		h.drawButton(b)
	}
}

// drawSnapshot lists the sim's parameter groups starting at baseline y.
func (h *HUD) drawSnapshot(y int) {
	face := basicfont.Face7x13
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += infoLine
		for _, param := range group.Params {
			text.Draw(h.panel, fmt.Sprintf("%s: %s", param.Label, param.Value), face, panelPadding+8, y, mutedColor)
			y += infoLine
		}
		y += infoLine / 2
	}
}

func (h *HUD) drawButton(b hudButton) {
	bg, fg := buttonColor, buttonText
	if !b.isEnabled() {
		bg, fg = disabledFill, disabledText
	}
	fillRect(h.panel, h.pixel, b.rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, b.label)
	x := b.rect.Min.X + (b.rect.Dx()-bounds.Dx())/2
	y := b.rect.Min.Y + (b.rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, b.label, face, x, y, fg)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:] + " Controls"
}
