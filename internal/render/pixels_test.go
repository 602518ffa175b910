package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 194, G: 178, B: 128, A: 255},
		{R: 10, G: 20, B: 30, A: 255},
	}
	cells := []uint8{0, 1, 2, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		0, 0, 0, 255,
		194, 178, 128, 255,
		10, 20, 30, 255,
		10, 20, 30, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}

func TestFillPaletteRGBAEmptyPalette(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []uint8{1, 0}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestBinaryPalette(t *testing.T) {
	p := BinaryPalette(color.White, color.Black)
	if p[0] != (color.RGBA{A: 255}) || p[1] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected palette %v", p)
	}
}
