package render

import (
	"image/color"

	"surfsim/pkg/contour"
)

// fillPaletteRGBA converts palette-indexed cells into RGBA pixels in buf.
// Indices past the palette clamp to its last entry; an empty palette clears
// the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// SegmentPixels maps a normalized contour segment into screen pixels for a
// grid of the given dimensions drawn at the given scale. Contour
// coordinates address cell corners, so the endpoints land on cell centers.
func SegmentPixels(s contour.Segment, w, h, scale int) (x1, y1, x2, y2 float32) {
	sx := float32(scale)
	spanX := float32(w - 1)
	if spanX <= 0 {
		spanX = 1
	}
	spanY := float32(h - 1)
	if spanY <= 0 {
		spanY = 1
	}
	x1 = (float32(s.X1)*spanX + 0.5) * sx
	y1 = (float32(s.Y1)*spanY + 0.5) * sx
	x2 = (float32(s.X2)*spanX + 0.5) * sx
	y2 = (float32(s.Y2)*spanY + 0.5) * sx
	return x1, y1, x2, y2
}
