package surf

import (
	"math"
	"testing"
)

const tickDT = 1.0 / 60

func deepWater(depth float64) DepthFn {
	return func(x, y float64) float64 { return depth }
}

func totalEnergy(f *EnergyField) float64 {
	var sum float64
	for _, v := range f.Height() {
		sum += float64(v)
	}
	return sum
}

func TestDeepWaterTranslationReachesShore(t *testing.T) {
	// travelDuration 2s over 120 rows at 60 TPS gives blend exactly 1:
	// pure one-row-per-tick translation with no numerical smearing.
	const (
		w, h      = 8, 120
		travel    = 2.0
		amplitude = 1.0
	)
	field := NewEnergyField(w, h)
	opt := EnergyOptions{TravelDuration: travel, DepthDampingCoefficient: 0}

	field.InjectWavePulse(amplitude)
	ticks := int(travel / tickDT)
	shoreRow := (h - 1) * w
	maxShore := 0.0
	for i := 0; i < ticks; i++ {
		field.Update(deepWater(10), tickDT, opt)
		for x := 0; x < w; x++ {
			if v := float64(field.Height()[shoreRow+x]); v > maxShore {
				maxShore = v
			}
		}
	}
	if math.Abs(maxShore-amplitude) > 0.1*amplitude {
		t.Fatalf("shore-row peak = %v, want within 10%% of %v", maxShore, amplitude)
	}
}

func TestEnergyConservedWithoutDamping(t *testing.T) {
	const w, h = 4, 40
	field := NewEnergyField(w, h)
	cells := field.Height()
	// Energy confined to the middle rows: the horizon fade and the shore
	// edge never see it over a short run.
	for y := 10; y < 20; y++ {
		for x := 0; x < w; x++ {
			cells[y*w+x] = 0.5
		}
	}
	before := totalEnergy(field)

	opt := EnergyOptions{TravelDuration: 40, DepthDampingCoefficient: 0}
	for i := 0; i < 10; i++ {
		field.Update(deepWater(10), tickDT, opt)
	}
	after := totalEnergy(field)
	if math.Abs(after-before) > 1e-3 {
		t.Fatalf("energy drifted without damping: before=%v after=%v", before, after)
	}
}

func TestDampingDisabledAtZeroCoefficient(t *testing.T) {
	a := NewEnergyField(4, 8)
	b := NewEnergyField(4, 8)
	a.InjectWavePulse(1)
	b.InjectWavePulse(1)

	a.Update(deepWater(0.2), tickDT, EnergyOptions{TravelDuration: 100})
	b.Update(nil, tickDT, EnergyOptions{TravelDuration: 100})
	for i := range a.Height() {
		if a.Height()[i] != b.Height()[i] {
			t.Fatalf("zero coefficient still damped: cell %d %v != %v", i, a.Height()[i], b.Height()[i])
		}
	}
}

func TestHorizonFadeHalvesBlendRate(t *testing.T) {
	const w, h = 4, 10
	field := NewEnergyField(w, h)
	field.InjectWavePulse(1)

	// travelDuration 10/6 gives blend = (10/(10/6))/60 = 0.1 exactly.
	opt := EnergyOptions{TravelDuration: 10.0 / 6}
	field.Update(deepWater(10), tickDT, opt)

	const blend = 0.1
	if got := float64(field.Height()[0]); math.Abs(got-(1-blend/2)) > 1e-6 {
		t.Fatalf("horizon cell = %v, want %v", got, 1-blend/2)
	}
	if got := float64(field.Height()[w]); math.Abs(got-blend) > 1e-6 {
		t.Fatalf("row 1 cell = %v, want %v", got, blend)
	}
}

func TestDepthDampingSharpensInShallows(t *testing.T) {
	field := NewEnergyField(2, 2)
	cells := field.Height()
	cells[0], cells[1], cells[2], cells[3] = 1, 1, 1, 1

	depthFn := func(x, y float64) float64 {
		if y < 0.5 {
			return 10
		}
		return 0.3
	}
	opt := EnergyOptions{
		TravelDuration:          1e12,
		DepthDampingCoefficient: 1,
		DepthDampingExponent:    1.5,
	}
	field.Update(depthFn, tickDT, opt)

	deep := float64(field.Height()[0])
	shallow := float64(field.Height()[2])
	if shallow >= deep {
		t.Fatalf("shallow cell %v not damped harder than deep cell %v", shallow, deep)
	}
}

func TestDrainSaturating(t *testing.T) {
	field := NewEnergyField(8, 8)
	idx := field.height.Index(3, 4)
	field.Height()[idx] = 0.8

	drained := field.DrainEnergyAt(3, 4, 10)
	if math.Abs(drained-0.8) > 1e-6 {
		t.Fatalf("drained = %v, want 0.8", drained)
	}
	if got := field.Height()[idx]; got != 0 {
		t.Fatalf("cell after saturating drain = %v, want 0", got)
	}
}

func TestDrainPartialAccounting(t *testing.T) {
	field := NewEnergyField(8, 8)
	idx := field.height.Index(2, 2)
	field.Height()[idx] = 0.8

	drained := field.DrainEnergyAt(2, 2, 0.3)
	if math.Abs(drained-0.3) > 1e-6 {
		t.Fatalf("drained = %v, want 0.3", drained)
	}
	if got := float64(field.Height()[idx]); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("post-drain cell = %v, want pre minus returned = 0.5", got)
	}
}

func TestDrainLeavesNegativeResidue(t *testing.T) {
	field := NewEnergyField(4, 4)
	idx := field.height.Index(1, 1)
	field.Height()[idx] = -0.2

	if drained := field.DrainEnergyAt(1, 1, 1); drained != 0 {
		t.Fatalf("drained %v from a negative cell, want 0", drained)
	}
	if got := float64(field.Height()[idx]); math.Abs(got+0.2) > 1e-6 {
		t.Fatalf("negative residue modified: %v", got)
	}
}

func TestDrainClampsCoordinates(t *testing.T) {
	field := NewEnergyField(4, 4)
	field.Height()[0] = 0.5

	if drained := field.DrainEnergyAt(-7, -7, 1); math.Abs(drained-0.5) > 1e-6 {
		t.Fatalf("out-of-range drain = %v, want clamp to (0,0) yielding 0.5", drained)
	}
}

func TestHeightAtBilinear(t *testing.T) {
	field := NewEnergyField(3, 3)
	cells := field.Height()
	cells[field.height.Index(0, 0)] = 1
	cells[field.height.Index(1, 0)] = 3

	if got := field.HeightAt(0.5, 0); math.Abs(got-2) > 1e-6 {
		t.Fatalf("midpoint sample = %v, want 2", got)
	}
	if got := field.HeightAt(0, 0); math.Abs(got-1) > 1e-6 {
		t.Fatalf("corner sample = %v, want 1", got)
	}
	// Clamped outside the grid.
	if got := field.HeightAt(-3, -3); math.Abs(got-1) > 1e-6 {
		t.Fatalf("clamped sample = %v, want 1", got)
	}
}

func TestInjectWavePulseUniformAcrossHorizon(t *testing.T) {
	field := NewEnergyField(6, 4)
	field.InjectWavePulse(0.4)
	field.InjectWavePulse(0.2)

	for x := 0; x < 6; x++ {
		if got := float64(field.Height()[x]); math.Abs(got-0.6) > 1e-6 {
			t.Fatalf("horizon cell %d = %v, want 0.6", x, got)
		}
	}
	for i := 6; i < len(field.Height()); i++ {
		if field.Height()[i] != 0 {
			t.Fatalf("pulse leaked past the horizon row at %d", i)
		}
	}
}

func TestLateralDiffusionGateDefaultsInert(t *testing.T) {
	hot := func() *EnergyField {
		f := NewEnergyField(5, 3)
		for y := 0; y < 3; y++ {
			f.Height()[f.height.Index(2, y)] = 1
		}
		return f
	}

	inert := hot()
	inert.Update(deepWater(10), tickDT, EnergyOptions{TravelDuration: 1e12})
	if got := float64(inert.Height()[inert.height.Index(1, 1)]); got > 1e-9 {
		t.Fatalf("rate 0 diffused laterally: %v", got)
	}

	active := hot()
	active.Update(deepWater(10), tickDT, EnergyOptions{TravelDuration: 1e12, LateralDiffusionRate: 6})
	if got := float64(active.Height()[active.height.Index(1, 1)]); got <= 1e-9 {
		t.Fatalf("positive rate did not diffuse laterally")
	}
}

func TestBandCoherencePullsTowardsRowMean(t *testing.T) {
	field := NewEnergyField(4, 2)
	field.Height()[0] = 1 // lone hot cell in row 0

	field.Update(deepWater(10), tickDT, EnergyOptions{TravelDuration: 1e12, BandCoherenceRate: 6})
	hot := float64(field.Height()[0])
	cold := float64(field.Height()[1])
	if !(hot < 1 && cold > 0) {
		t.Fatalf("band coherence inert at positive rate: hot=%v cold=%v", hot, cold)
	}
}
