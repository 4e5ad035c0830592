package contour

import (
	"math"
	"testing"
)

func TestSimplifyDropsCollinearPoints(t *testing.T) {
	points := []Point{
		{0, 0}, {0.25, 0.25}, {0.5, 0.5}, {0.75, 0.75}, {1, 1},
	}
	got := SimplifyContour(points, 1e-6)
	if len(got) != 2 {
		t.Fatalf("straight line simplified to %d points, want 2", len(got))
	}
	if got[0] != points[0] || got[1] != points[len(points)-1] {
		t.Fatalf("endpoints not preserved: %+v", got)
	}
}

func TestSimplifyKeepsCorners(t *testing.T) {
	points := []Point{
		{0, 0}, {0.5, 0}, {0.5, 0.5}, {1, 0.5},
	}
	got := SimplifyContour(points, 0.01)
	if len(got) != len(points) {
		t.Fatalf("corner points dropped: %d of %d survive", len(got), len(points))
	}
}

func TestSimplifyToleranceScales(t *testing.T) {
	points := []Point{
		{0, 0}, {0.5, 0.02}, {1, 0},
	}
	if got := SimplifyContour(points, 0.001); len(got) != 3 {
		t.Fatalf("tight tolerance dropped a deviating point: %d", len(got))
	}
	if got := SimplifyContour(points, 0.1); len(got) != 2 {
		t.Fatalf("loose tolerance kept a near-collinear point: %d", len(got))
	}
}

func TestSmoothContourOpenSpans(t *testing.T) {
	points := []Point{{0, 0}, {0.5, 0.4}, {1, 0}}
	curves := SmoothContour(points, false)
	if len(curves) != 2 {
		t.Fatalf("open smooth yielded %d spans, want 2", len(curves))
	}
	if curves[0].P0 != points[0] || curves[1].P1 != points[2] {
		t.Fatalf("span endpoints drifted: %+v", curves)
	}
	if curves[0].P1 != curves[1].P0 {
		t.Fatal("adjacent spans do not share a knot")
	}
}

func TestSmoothContourClosedWrapsAround(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	curves := SmoothContour(points, true)
	if len(curves) != 4 {
		t.Fatalf("closed smooth yielded %d spans, want 4", len(curves))
	}
	last := curves[len(curves)-1]
	if math.Abs(last.P1.X-points[0].X) > 1e-9 || math.Abs(last.P1.Y-points[0].Y) > 1e-9 {
		t.Fatal("closed smooth does not return to the first point")
	}
}
