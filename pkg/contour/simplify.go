package contour

import "math"

// SimplifyContour drops points that are nearly collinear with their
// neighbors, keeping any vertex whose perpendicular deviation from the
// chord exceeds the tolerance. Endpoints always survive.
func SimplifyContour(points []Point, tolerance float64) []Point {
	if len(points) <= 2 || tolerance <= 0 {
		return points
	}
	simplified := make([]Point, 0, len(points))
	simplified = append(simplified, points[0])
	for i := 1; i < len(points)-1; i++ {
		prev := simplified[len(simplified)-1]
		next := points[i+1]
		if perpendicularDistance(points[i], prev, next) > tolerance {
			simplified = append(simplified, points[i])
		}
	}
	simplified = append(simplified, points[len(points)-1])
	return simplified
}

func perpendicularDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(dx*(a.Y-p.Y)-dy*(a.X-p.X)) / length
}

// CubicBezier is one smoothed span of a contour.
type CubicBezier struct {
	P0, C1, C2, P1 Point
}

// SmoothContour converts a point sequence into Catmull-Rom derived cubic
// Bezier spans. This is a render-facing helper; the simulation never needs
// smoothed geometry.
func SmoothContour(points []Point, closed bool) []CubicBezier {
	n := len(points)
	if n < 2 {
		return nil
	}
	at := func(i int) Point {
		if closed {
			return points[((i%n)+n)%n]
		}
		if i < 0 {
			return points[0]
		}
		if i >= n {
			return points[n-1]
		}
		return points[i]
	}
	spans := n - 1
	if closed {
		spans = n
	}
	curves := make([]CubicBezier, 0, spans)
	for i := 0; i < spans; i++ {
		p0 := at(i - 1)
		p1 := at(i)
		p2 := at(i + 1)
		p3 := at(i + 2)
		curves = append(curves, CubicBezier{
			P0: p1,
			C1: Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6},
			C2: Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6},
			P1: p2,
		})
	}
	return curves
}
