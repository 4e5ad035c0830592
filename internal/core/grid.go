package core

// FloatGrid stores a 2D grid of float32 cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float32
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float32 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *FloatGrid) Index(x, y int) int { return y*g.W + x }

// Clamp restricts coordinates to the grid bounds. Shoreline grids have hard
// edges, so out-of-range samples stick to the nearest cell instead of
// wrapping.
func (g *FloatGrid) Clamp(x, y int) (int, int) {
	if x < 0 {
		x = 0
	} else if x >= g.W {
		x = g.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.H {
		y = g.H - 1
	}
	return x, y
}

// Clear fills the grid with zeros.
func (g *FloatGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
