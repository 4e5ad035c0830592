//go:build ebiten

package render

import (
	"image/color"

	"surfsim/pkg/contour"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridPainter uploads palette-indexed cell data into a single RGBA image
// and draws it scaled, with optional contour strokes on top.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// StrokeSegments draws normalized contour segments at the painter's grid
// scale. Callers pass rings low-to-high threshold so denser rings draw on
// top.
func (gp *GridPainter) StrokeSegments(dst *ebiten.Image, segments []contour.Segment, scale int, width float32, col color.Color) {
	if width <= 0 {
		width = 1
	}
	for _, s := range segments {
		x1, y1, x2, y2 := SegmentPixels(s, gp.w, gp.h, scale)
		vector.StrokeLine(dst, x1, y1, x2, y2, width, col, true)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
