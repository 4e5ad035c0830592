package contour

// BoxBlur smooths the grid in place with a 3x3 box filter, repeated for the
// requested number of passes. Edge samples clamp to the grid border. Zero
// passes is a no-op; raw foam cells produce single-cell jaggies without at
// least one pass.
func BoxBlur(grid []float32, w, h, passes int) {
	if w <= 0 || h <= 0 || len(grid) < w*h || passes <= 0 {
		return
	}
	scratch := make([]float32, w*h)
	for pass := 0; pass < passes; pass++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var sum float32
				for dy := -1; dy <= 1; dy++ {
					sy := y + dy
					if sy < 0 {
						sy = 0
					} else if sy >= h {
						sy = h - 1
					}
					for dx := -1; dx <= 1; dx++ {
						sx := x + dx
						if sx < 0 {
							sx = 0
						} else if sx >= w {
							sx = w - 1
						}
						sum += grid[sy*w+sx]
					}
				}
				scratch[y*w+x] = sum / 9
			}
		}
		copy(grid, scratch)
	}
}
