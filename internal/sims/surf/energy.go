package surf

import (
	"math"

	"surfsim/internal/core"
)

// DepthFn samples water depth at a normalized position. The orchestrator
// binds it to a Bathymetry; the energy field never constructs one itself.
type DepthFn func(x, y float64) float64

// EnergyOptions carries the per-update coefficients for the energy field.
type EnergyOptions struct {
	TravelDuration          float64
	DepthDampingCoefficient float64
	DepthDampingExponent    float64
	LateralDiffusionRate    float64
	BandCoherenceRate       float64
}

// EnergyField holds wave energy on a fixed-size grid. Row 0 is the horizon,
// the last row is the shore. The velocity buffer is allocated alongside the
// height buffer but is not consumed by the current scheme.
type EnergyField struct {
	w, h     int
	height   *core.FloatGrid
	velocity *core.FloatGrid
}

// NewEnergyField allocates an energy field with the given dimensions.
func NewEnergyField(w, h int) *EnergyField {
	hg := core.NewFloatGrid(w, h)
	return &EnergyField{
		w:        hg.W,
		h:        hg.H,
		height:   hg,
		velocity: core.NewFloatGrid(w, h),
	}
}

// Size reports the grid dimensions.
func (f *EnergyField) Size() core.Size { return core.Size{W: f.w, H: f.h} }

// Height exposes the backing height buffer.
func (f *EnergyField) Height() []float32 { return f.height.Cells() }

// Clear zeroes both buffers.
func (f *EnergyField) Clear() {
	f.height.Clear()
	f.velocity.Clear()
}

// Update advances the field by dt seconds: shoreward blend, horizon fade,
// depth damping, then the rate-gated lateral passes. The caller supplies dt
// pre-clamped; no clamping happens here.
func (f *EnergyField) Update(depthFn DepthFn, dt float64, opt EnergyOptions) {
	f.blendShoreward(dt, opt.TravelDuration)
	f.applyDepthDamping(depthFn, dt, opt)
	if opt.LateralDiffusionRate > 0 {
		f.diffuseLaterally(dt, opt.LateralDiffusionRate)
	}
	if opt.BandCoherenceRate > 0 {
		f.cohereBands(dt, opt.BandCoherenceRate)
	}
}

// blendShoreward translates energy towards the shore by blending each row
// with the row above it, bottom-up so every row reads pre-tick values. The
// horizon row has no feeder, so it fades at half the blend rate instead of
// holding a permanent ridge.
func (f *EnergyField) blendShoreward(dt, travelDuration float64) {
	blend := 1.0
	if travelDuration > 0 {
		blend = float64(f.h) / travelDuration * dt
		if blend > 1 {
			blend = 1
		}
	}
	if blend <= 0 {
		return
	}
	cells := f.height.Cells()
	keep := float32(1 - blend)
	take := float32(blend)
	for y := f.h - 1; y >= 1; y-- {
		row := y * f.w
		above := row - f.w
		for x := 0; x < f.w; x++ {
			cells[row+x] = cells[row+x]*keep + cells[above+x]*take
		}
	}
	fade := float32(1 - blend*0.5)
	for x := 0; x < f.w; x++ {
		cells[x] *= fade
	}
}

// applyDepthDamping multiplies each cell by exp(-coefficient*dt/depth^exp).
// A 0.01 depth floor keeps the divisor sane; exponents above 1 sharpen the
// decay as depth approaches zero. Coefficient 0 disables the pass entirely.
func (f *EnergyField) applyDepthDamping(depthFn DepthFn, dt float64, opt EnergyOptions) {
	if opt.DepthDampingCoefficient <= 0 || depthFn == nil {
		return
	}
	exponent := opt.DepthDampingExponent
	if exponent <= 0 {
		exponent = 1
	}
	cells := f.height.Cells()
	invW := 1.0
	if f.w > 1 {
		invW = 1 / float64(f.w-1)
	}
	invH := 1.0
	if f.h > 1 {
		invH = 1 / float64(f.h-1)
	}
	for y := 0; y < f.h; y++ {
		ny := float64(y) * invH
		row := y * f.w
		for x := 0; x < f.w; x++ {
			depth := depthFn(float64(x)*invW, ny)
			if depth < 0.01 {
				depth = 0.01
			}
			factor := math.Exp(-opt.DepthDampingCoefficient * dt / math.Pow(depth, exponent))
			cells[row+x] *= float32(factor)
		}
	}
}

// diffuseLaterally blends each cell towards the mean of its lateral
// neighbors. Rate 0 is the inert default; the pass is kept as an extension
// point for choppier break-up of the wave bands.
func (f *EnergyField) diffuseLaterally(dt, rate float64) {
	mix := rate * dt
	if mix > 1 {
		mix = 1
	}
	cells := f.height.Cells()
	prev := make([]float32, f.w)
	for y := 0; y < f.h; y++ {
		row := y * f.w
		copy(prev, cells[row:row+f.w])
		for x := 0; x < f.w; x++ {
			left := prev[maxInt(x-1, 0)]
			right := prev[minInt(x+1, f.w-1)]
			mean := (left + right) * 0.5
			cells[row+x] += float32(mix) * (mean - prev[x])
		}
	}
}

// cohereBands pulls every cell of a row towards the row mean, tightening
// wave fronts into coherent bands. Rate 0 keeps the pass inert.
func (f *EnergyField) cohereBands(dt, rate float64) {
	mix := rate * dt
	if mix > 1 {
		mix = 1
	}
	cells := f.height.Cells()
	for y := 0; y < f.h; y++ {
		row := y * f.w
		var sum float32
		for x := 0; x < f.w; x++ {
			sum += cells[row+x]
		}
		mean := sum / float32(f.w)
		for x := 0; x < f.w; x++ {
			cells[row+x] += float32(mix) * (mean - cells[row+x])
		}
	}
}

// InjectWavePulse adds amplitude uniformly across the horizon row. This is
// the sole injection entry point; the wave-spawn cadence lives upstream.
func (f *EnergyField) InjectWavePulse(amplitude float64) {
	cells := f.height.Cells()
	amp := float32(amplitude)
	for x := 0; x < f.w; x++ {
		cells[x] += amp
	}
}

// DrainEnergyAt removes up to amount from the cell nearest (x, y) and
// returns how much was actually removed. Only positive energy is drained;
// negative residue is left untouched. The return value is the conserved
// quantity the caller must deposit into the foam transfer grid.
func (f *EnergyField) DrainEnergyAt(x, y, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	cx, cy := f.height.Clamp(int(math.Round(x)), int(math.Round(y)))
	idx := f.height.Index(cx, cy)
	cells := f.height.Cells()
	available := float64(cells[idx])
	if available <= 0 {
		return 0
	}
	drained := amount
	if drained > available {
		drained = available
	}
	cells[idx] -= float32(drained)
	return drained
}

// HeightAt samples the height buffer bilinearly at an arbitrary grid
// position. Coordinates are clamped to the grid bounds.
func (f *EnergyField) HeightAt(x, y float64) float64 {
	return sampleBilinear(f.height, x, y)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
