package surf

import (
	"math"

	"surfsim/internal/core"
)

// sampleBilinear reads a grid at an arbitrary position using bilinear
// interpolation. Positions outside the grid clamp to the nearest edge. The
// energy and foam grids share this scheme so point samples agree between
// them.
func sampleBilinear(g *core.FloatGrid, x, y float64) float64 {
	if g.W <= 0 || g.H <= 0 {
		return 0
	}
	if x < 0 {
		x = 0
	} else if x > float64(g.W-1) {
		x = float64(g.W - 1)
	}
	if y < 0 {
		y = 0
	} else if y > float64(g.H-1) {
		y = float64(g.H - 1)
	}
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := x0
	if x0+1 < g.W {
		x1 = x0 + 1
	}
	y1 := y0
	if y0+1 < g.H {
		y1 = y0 + 1
	}
	fx := x - float64(x0)
	fy := y - float64(y0)

	cells := g.Cells()
	v00 := float64(cells[y0*g.W+x0])
	v10 := float64(cells[y0*g.W+x1])
	v01 := float64(cells[y1*g.W+x0])
	v11 := float64(cells[y1*g.W+x1])

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}
