package contour

import (
	"math"
	"testing"
)

func TestBoxBlurZeroPassesIsNoop(t *testing.T) {
	grid := waveGrid(8, 8)
	want := append([]float32(nil), grid...)
	BoxBlur(grid, 8, 8, 0)
	for i := range grid {
		if grid[i] != want[i] {
			t.Fatalf("zero passes modified cell %d", i)
		}
	}
}

func TestBoxBlurSpreadsPeak(t *testing.T) {
	grid := make([]float32, 7*7)
	center := 3*7 + 3
	grid[center] = 0.9

	BoxBlur(grid, 7, 7, 1)

	if got := float64(grid[center]); math.Abs(got-0.1) > 1e-6 {
		t.Fatalf("blurred peak = %v, want 0.1", got)
	}
	neighbor := float64(grid[center+1])
	if math.Abs(neighbor-0.1) > 1e-6 {
		t.Fatalf("blurred neighbor = %v, want 0.1", neighbor)
	}
	if far := grid[0]; far != 0 {
		t.Fatalf("single pass reached the far corner: %v", far)
	}
}

func TestBoxBlurRepeatedPassesFlatten(t *testing.T) {
	grid := make([]float32, 9*9)
	grid[4*9+4] = 1

	BoxBlur(grid, 9, 9, 4)

	var peak float32
	for _, v := range grid {
		if v > peak {
			peak = v
		}
	}
	if peak >= 0.1 {
		t.Fatalf("four passes left peak at %v", peak)
	}
}

func TestBuildIntensityGridCopies(t *testing.T) {
	src := waveGrid(6, 5)
	grid := BuildIntensityGrid(src, 6, 5)
	if len(grid) != len(src) {
		t.Fatalf("copy length %d, want %d", len(grid), len(src))
	}
	grid[0] = 42
	if src[0] == 42 {
		t.Fatal("intensity grid aliases the source buffer")
	}
	if BuildIntensityGrid(src, 100, 100) != nil {
		t.Fatal("undersized source must yield nil")
	}
}
