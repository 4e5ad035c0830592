package surf

import (
	"math"
	"testing"
)

func foamMass(g *FoamGrid) float64 {
	var sum float64
	for _, v := range g.Foam() {
		sum += float64(v)
	}
	return sum
}

func TestDepositClampsToOne(t *testing.T) {
	grid := NewFoamGrid(4, 4)
	grid.AccumulateEnergyTransfer(2, 2, 50)
	grid.Update(tickDT, FoamOptions{DepositScale: 1})

	idx := grid.foam.Index(2, 2)
	if got := grid.Foam()[idx]; got != 1 {
		t.Fatalf("oversized deposit produced foam %v, want clamp at 1", got)
	}
}

func TestFoamStaysInRange(t *testing.T) {
	grid := NewFoamGrid(6, 6)
	opt := FoamOptions{DecayRate: 3, DepositScale: 4, AdvectRate: 2}
	for i := 0; i < 200; i++ {
		grid.AccumulateEnergyTransfer(float64(i%6), float64((i*7)%6), float64(i%13))
		grid.Update(tickDT, opt)
		for j, v := range grid.Foam() {
			if v < 0 || v > 1 {
				t.Fatalf("tick %d: foam[%d] = %v outside [0,1]", i, j, v)
			}
		}
	}
}

func TestTransferClearedEveryTick(t *testing.T) {
	grid := NewFoamGrid(4, 4)
	grid.AccumulateEnergyTransfer(1, 1, 0.5)
	grid.Update(tickDT, FoamOptions{DepositScale: 1})

	for i, v := range grid.Transfer() {
		if v != 0 {
			t.Fatalf("transfer[%d] = %v after update, want 0", i, v)
		}
	}

	// A tick with no accumulation deposits nothing: foam only decays.
	before := foamMass(grid)
	grid.Update(tickDT, FoamOptions{DecayRate: 1, DepositScale: 1})
	after := foamMass(grid)
	if after >= before {
		t.Fatalf("stale transfer carried over: mass %v -> %v", before, after)
	}
}

func TestAccumulateAddsNeverOverwrites(t *testing.T) {
	grid := NewFoamGrid(4, 4)
	grid.AccumulateEnergyTransfer(1, 2, 0.2)
	grid.AccumulateEnergyTransfer(1, 2, 0.3)

	idx := grid.transfer.Index(1, 2)
	if got := float64(grid.Transfer()[idx]); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("stacked accumulation = %v, want 0.5", got)
	}
}

func TestAccumulateClampsCoordinates(t *testing.T) {
	grid := NewFoamGrid(4, 4)
	grid.AccumulateEnergyTransfer(99, 99, 0.25)

	idx := grid.transfer.Index(3, 3)
	if got := float64(grid.Transfer()[idx]); math.Abs(got-0.25) > 1e-6 {
		t.Fatalf("out-of-range accumulate landed at %v, want corner cell 0.25", got)
	}
}

func TestAdvectionMovesMassOneRowShoreward(t *testing.T) {
	grid := NewFoamGrid(3, 8)
	idx := grid.foam.Index(1, 5)
	grid.Foam()[idx] = 0.4

	// advect 1.0 * dt 0.5 moves exactly half the mass one row down.
	grid.Update(0.5, FoamOptions{AdvectRate: 1})

	if got := float64(grid.Foam()[idx]); math.Abs(got-0.2) > 1e-6 {
		t.Fatalf("source cell = %v, want 0.2", got)
	}
	below := grid.foam.Index(1, 6)
	if got := float64(grid.Foam()[below]); math.Abs(got-0.2) > 1e-6 {
		t.Fatalf("row below = %v, want 0.2", got)
	}
	// Bottom-up processing moves mass a single row per tick.
	twoBelow := grid.foam.Index(1, 7)
	if got := grid.Foam()[twoBelow]; got != 0 {
		t.Fatalf("mass cascaded two rows in one tick: %v", got)
	}
}

func TestAdvectionLosesMassAtShoreEdge(t *testing.T) {
	grid := NewFoamGrid(3, 4)
	idx := grid.foam.Index(1, 3)
	grid.Foam()[idx] = 0.5
	before := foamMass(grid)

	grid.Update(0.5, FoamOptions{AdvectRate: 1})
	after := foamMass(grid)
	if after >= before {
		t.Fatalf("shore-edge outflow not lost: mass %v -> %v", before, after)
	}
	if got := float64(grid.Foam()[idx]); math.Abs(got-0.25) > 1e-6 {
		t.Fatalf("shore cell = %v, want 0.25", got)
	}
}

func TestDecayFollowsRate(t *testing.T) {
	grid := NewFoamGrid(2, 2)
	grid.Foam()[0] = 0.8

	grid.Update(0.5, FoamOptions{DecayRate: 1})
	if got := float64(grid.Foam()[0]); math.Abs(got-0.4) > 1e-6 {
		t.Fatalf("decayed foam = %v, want 0.4", got)
	}

	// Decay factor floors at zero for huge rate*dt instead of going negative.
	grid.Foam()[0] = 0.8
	grid.Update(10, FoamOptions{DecayRate: 5})
	if got := grid.Foam()[0]; got != 0 {
		t.Fatalf("overdriven decay = %v, want 0", got)
	}
}

func TestSampleMatchesBilinearScheme(t *testing.T) {
	grid := NewFoamGrid(3, 3)
	grid.Foam()[grid.foam.Index(0, 0)] = 1
	grid.Foam()[grid.foam.Index(1, 0)] = 0.5

	if got := grid.Sample(0.5, 0); math.Abs(got-0.75) > 1e-6 {
		t.Fatalf("bilinear foam sample = %v, want 0.75", got)
	}
	if got := grid.Sample(-2, -2); math.Abs(got-1) > 1e-6 {
		t.Fatalf("clamped foam sample = %v, want 1", got)
	}
}
