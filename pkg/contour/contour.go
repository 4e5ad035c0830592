// Package contour extracts isoline geometry from scalar grids using
// marching squares. Outputs are in normalized 0..1 coordinates; mapping to
// pixels is the renderer's job.
package contour

// Point is a vertex of a traced contour, normalized to 0..1.
type Point struct {
	X, Y float64
}

// Segment is a single disconnected isoline piece inside one cell.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Cell edges, clockwise from the top.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// edgePairs maps a 4-bit cell code (TL<<3 | TR<<2 | BR<<1 | BL, bit set when
// the corner is at or above threshold) to the crossed edge pairs. Codes 5
// and 10 are ambiguous saddles; they use a fixed pairing here rather than
// center-sampling disambiguation, matching the behavior rendering baselines
// were tuned against.
var edgePairs = [16][][2]int{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeRight}, {edgeBottom, edgeLeft}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeLeft}, {edgeBottom, edgeRight}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeRight, edgeBottom}},
	14: {{edgeBottom, edgeLeft}},
	15: nil,
}

// BuildIntensityGrid copies a scalar field into a scratch grid suitable for
// blurring and extraction. The copy is transient; callers rebuild it every
// extraction pass.
func BuildIntensityGrid(src []float32, w, h int) []float32 {
	n := w * h
	if n <= 0 || len(src) < n {
		return nil
	}
	grid := make([]float32, n)
	copy(grid, src[:n])
	return grid
}

// cellCode classifies the 2x2 cell whose top-left corner is (cx, cy).
func cellCode(grid []float32, w, cx, cy int, threshold float64) int {
	thr := float32(threshold)
	code := 0
	if grid[cy*w+cx] >= thr {
		code |= 8
	}
	if grid[cy*w+cx+1] >= thr {
		code |= 4
	}
	if grid[(cy+1)*w+cx+1] >= thr {
		code |= 2
	}
	if grid[(cy+1)*w+cx] >= thr {
		code |= 1
	}
	return code
}

// interpolate finds where the threshold crosses between two corner values.
// Near-degenerate edges return the midpoint instead of dividing by a
// near-zero span.
func interpolate(threshold, v1, v2 float64) float64 {
	den := v2 - v1
	if den > -1e-4 && den < 1e-4 {
		return 0.5
	}
	t := (threshold - v1) / den
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// edgePoint returns the normalized crossing position on one edge of the
// cell at (cx, cy).
func edgePoint(grid []float32, w, h, cx, cy, edge int, threshold float64) Point {
	vTL := float64(grid[cy*w+cx])
	vTR := float64(grid[cy*w+cx+1])
	vBR := float64(grid[(cy+1)*w+cx+1])
	vBL := float64(grid[(cy+1)*w+cx])

	var fx, fy float64
	switch edge {
	case edgeTop:
		fx = float64(cx) + interpolate(threshold, vTL, vTR)
		fy = float64(cy)
	case edgeRight:
		fx = float64(cx + 1)
		fy = float64(cy) + interpolate(threshold, vTR, vBR)
	case edgeBottom:
		fx = float64(cx) + interpolate(threshold, vBL, vBR)
		fy = float64(cy + 1)
	default:
		fx = float64(cx)
		fy = float64(cy) + interpolate(threshold, vTL, vBL)
	}

	spanX := float64(w - 1)
	if spanX <= 0 {
		spanX = 1
	}
	spanY := float64(h - 1)
	if spanY <= 0 {
		spanY = 1
	}
	return Point{X: fx / spanX, Y: fy / spanY}
}

// ExtractLineSegments emits one disconnected segment per crossed edge pair,
// straight from the lookup table. No topology is built; this is the cheap
// path for stroke rendering.
func ExtractLineSegments(grid []float32, w, h int, threshold float64) []Segment {
	if w < 2 || h < 2 || len(grid) < w*h {
		return nil
	}
	var segments []Segment
	for cy := 0; cy < h-1; cy++ {
		for cx := 0; cx < w-1; cx++ {
			code := cellCode(grid, w, cx, cy, threshold)
			for _, pair := range edgePairs[code] {
				a := edgePoint(grid, w, h, cx, cy, pair[0], threshold)
				b := edgePoint(grid, w, h, cx, cy, pair[1], threshold)
				segments = append(segments, Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y})
			}
		}
	}
	return segments
}

// ExtractContours walks connected cells into ordered point sequences. Each
// trace follows "exit edge != entry edge" into the neighbor sharing the exit
// edge until the loop closes, the neighbors run out, or the iteration cap
// truncates it.
func ExtractContours(grid []float32, w, h int, threshold float64) [][]Point {
	if w < 2 || h < 2 || len(grid) < w*h {
		return nil
	}
	cw := w - 1
	ch := h - 1
	visited := make([]bool, cw*ch)
	var contours [][]Point
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			if visited[cy*cw+cx] {
				continue
			}
			code := cellCode(grid, w, cx, cy, threshold)
			if code == 0 || code == 15 {
				continue
			}
			points := traceContour(grid, w, h, cx, cy, threshold, visited)
			if len(points) >= 2 {
				contours = append(contours, points)
			}
		}
	}
	return contours
}

// traceContour walks one contour starting at the given cell. The iteration
// cap exists because the fixed saddle pairing can cycle; hitting it
// truncates the trace instead of hanging.
func traceContour(grid []float32, w, h, startX, startY int, threshold float64, visited []bool) []Point {
	cw := w - 1
	maxSteps := 2 * w * h
	var points []Point

	cx, cy := startX, startY
	entry := -1
	for step := 0; step < maxSteps; step++ {
		code := cellCode(grid, w, cx, cy, threshold)
		if code == 0 || code == 15 {
			break
		}
		pairs := edgePairs[code]
		exit := -1
		if entry < 0 {
			points = append(points, edgePoint(grid, w, h, cx, cy, pairs[0][0], threshold))
			exit = pairs[0][1]
		} else {
			for _, pair := range pairs {
				if pair[0] == entry {
					exit = pair[1]
					break
				}
				if pair[1] == entry {
					exit = pair[0]
					break
				}
			}
			if exit < 0 {
				break
			}
		}
		visited[cy*cw+cx] = true
		points = append(points, edgePoint(grid, w, h, cx, cy, exit, threshold))

		nx, ny := cx, cy
		switch exit {
		case edgeTop:
			ny--
		case edgeRight:
			nx++
		case edgeBottom:
			ny++
		default:
			nx--
		}
		if nx < 0 || ny < 0 || nx >= cw || ny >= h-1 {
			break
		}
		if nx == startX && ny == startY {
			// Loop closed.
			break
		}
		cx, cy = nx, ny
		entry = oppositeEdge(exit)
	}
	return points
}

func oppositeEdge(edge int) int {
	switch edge {
	case edgeTop:
		return edgeBottom
	case edgeBottom:
		return edgeTop
	case edgeLeft:
		return edgeRight
	default:
		return edgeLeft
	}
}
