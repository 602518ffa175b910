package ui

import (
	"image"

	"mad-sand/internal/core"
)

// adjustedValue applies one step of a control in the given direction and
// clamps the result to the control's bounds.
func adjustedValue(ctrl core.ParameterControl, current, direction int) int {
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target
}

// brushSquare returns the screen rectangle covered by a drop square of the
// given radius around a cell, or an empty rectangle when radius is zero.
func brushSquare(col, row, radius, scale int) image.Rectangle {
	if radius <= 0 || scale <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(
		(col-radius)*scale,
		(row-radius)*scale,
		(col+radius+1)*scale,
		(row+radius+1)*scale,
	)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

// layoutButtons right-aligns buttons of the given widths inside a panel row
// starting at top. Rectangles are returned in the order of widths.
func layoutButtons(panelWidth, top int, widths []int) []image.Rectangle {
	rects := make([]image.Rectangle, len(widths))
	y := top + (rowHeight-buttonSize)/2
	right := panelWidth - panelPadding
	for i := len(widths) - 1; i >= 0; i-- {
		w := max(widths[i], buttonSize)
		rects[i] = image.Rect(right-w, y, right, y+buttonSize)
		right -= w + buttonGap
	}
	return rects
}

// buttonWidth sizes a button to fit label in the 7px basic font.
func buttonWidth(label string) int {
	return len(label)*glyphWidth + 2*buttonInset
}

const (
	panelPadding   = 12
	rowHeight      = 36
	buttonSize     = 24
	buttonGap      = 6
	buttonInset    = 6
	glyphWidth     = 7
	headerBaseline = 18
	labelBaseline  = 24
	infoLine       = 16
	rowsTop        = panelPadding + headerBaseline + 14
)
