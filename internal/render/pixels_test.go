package render

import (
	"image/color"
	"testing"

	"surfsim/pkg/contour"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{
		{R: 10, G: 20, B: 30, A: 255},
		{R: 200, G: 210, B: 220, A: 255},
	}
	cells := []uint8{0, 1, 5} // 5 is out of range, clamps to last entry
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)

	want := []byte{
		10, 20, 30, 255,
		200, 210, 220, 255,
		200, 210, 220, 255,
	}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], b)
		}
	}
}

func TestFillPaletteRGBAEmptyPaletteClears(t *testing.T) {
	buf := []byte{9, 9, 9, 9}
	fillPaletteRGBA(buf, []uint8{3}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("buf[%d] = %d, want 0", i, b)
		}
	}
}

func TestSegmentPixelsMapsCorners(t *testing.T) {
	// A segment spanning the full normalized range should land on the
	// centers of the first and last cells.
	s := contour.Segment{X1: 0, Y1: 0, X2: 1, Y2: 1}
	x1, y1, x2, y2 := SegmentPixels(s, 10, 6, 4)

	if x1 != 0.5*4 || y1 != 0.5*4 {
		t.Fatalf("start = (%v, %v), want (2, 2)", x1, y1)
	}
	if x2 != (9+0.5)*4 || y2 != (5+0.5)*4 {
		t.Fatalf("end = (%v, %v), want (38, 22)", x2, y2)
	}
}

func TestSegmentPixelsMidpoint(t *testing.T) {
	s := contour.Segment{X1: 0.5, Y1: 0.5, X2: 0.5, Y2: 0.5}
	x1, y1, _, _ := SegmentPixels(s, 5, 5, 2)
	if x1 != (2+0.5)*2 || y1 != (2+0.5)*2 {
		t.Fatalf("midpoint = (%v, %v), want (5, 5)", x1, y1)
	}
}

func TestSegmentPixelsDegenerateGrid(t *testing.T) {
	s := contour.Segment{X1: 0, Y1: 0, X2: 1, Y2: 1}
	x1, _, x2, _ := SegmentPixels(s, 1, 1, 3)
	if x1 != 0.5*3 || x2 != (1+0.5)*3 {
		t.Fatalf("degenerate grid span = (%v, %v)", x1, x2)
	}
}
