package surf

import (
	"math"

	"surfsim/internal/core"
)

// FoamOptions carries the per-update coefficients for the foam layer.
type FoamOptions struct {
	DecayRate    float64
	DepositScale float64
	AdvectRate   float64
}

// FoamGrid owns the persistent foam density grid and its tick-scoped
// energyTransfer scratch accumulator. Both share the energy field's
// dimensions for 1:1 cell correspondence.
type FoamGrid struct {
	w, h     int
	foam     *core.FloatGrid
	transfer *core.FloatGrid
}

// NewFoamGrid allocates the foam/transfer pair.
func NewFoamGrid(w, h int) *FoamGrid {
	fg := core.NewFloatGrid(w, h)
	return &FoamGrid{
		w:        fg.W,
		h:        fg.H,
		foam:     fg,
		transfer: core.NewFloatGrid(w, h),
	}
}

// Size reports the grid dimensions.
func (g *FoamGrid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Foam exposes the persistent foam density buffer.
func (g *FoamGrid) Foam() []float32 { return g.foam.Cells() }

// Transfer exposes the tick-scoped transfer buffer.
func (g *FoamGrid) Transfer() []float32 { return g.transfer.Cells() }

// Clear zeroes both buffers.
func (g *FoamGrid) Clear() {
	g.foam.Clear()
	g.transfer.Clear()
}

// AccumulateEnergyTransfer adds amount into the transfer cell nearest
// (x, y). It accumulates rather than overwrites, so multiple breaking events
// landing on the same cell within a tick stack up.
func (g *FoamGrid) AccumulateEnergyTransfer(x, y, amount float64) {
	if amount == 0 {
		return
	}
	cx, cy := g.transfer.Clamp(int(math.Round(x)), int(math.Round(y)))
	g.transfer.Cells()[g.transfer.Index(cx, cy)] += float32(amount)
}

// Update runs the foam pass for one tick: decay the persistent layer,
// deposit the accumulated transfer, zero the transfer cells, then advect the
// result shoreward. The transfer buffer is single-tick scratch; a tick with
// no accumulation simply deposits nothing.
func (g *FoamGrid) Update(dt float64, opt FoamOptions) {
	g.decayAndDeposit(dt, opt)
	g.advectShoreward(dt, opt.AdvectRate)
}

func (g *FoamGrid) decayAndDeposit(dt float64, opt FoamOptions) {
	foam := g.foam.Cells()
	transfer := g.transfer.Cells()
	keep := 1 - opt.DecayRate*dt
	if keep < 0 {
		keep = 0
	}
	keep32 := float32(keep)
	deposit := float32(opt.DepositScale)
	for i := range foam {
		v := foam[i]*keep32 + transfer[i]*deposit
		if v > 1 {
			v = 1
		}
		foam[i] = v
		transfer[i] = 0
	}
}

// advectShoreward moves a fraction of each cell's mass into the row below.
// Rows are processed bottom-up so moved mass never cascades more than one
// row per tick. Receiving cells clamp at 1 and the last row's outflow has
// nowhere to go; both losses are accepted, foam dissipates at the beach.
func (g *FoamGrid) advectShoreward(dt, rate float64) {
	frac := rate * dt
	if frac <= 0 {
		return
	}
	if frac > 1 {
		frac = 1
	}
	foam := g.foam.Cells()
	move32 := float32(frac)
	for y := g.h - 1; y >= 0; y-- {
		row := y * g.w
		below := row + g.w
		for x := 0; x < g.w; x++ {
			moved := foam[row+x] * move32
			if moved == 0 {
				continue
			}
			foam[row+x] -= moved
			if y+1 < g.h {
				v := foam[below+x] + moved
				if v > 1 {
					v = 1
				}
				foam[below+x] = v
			}
		}
	}
}

// Sample reads the foam density bilinearly at an arbitrary grid position,
// using the same scheme as the energy field.
func (g *FoamGrid) Sample(x, y float64) float64 {
	return sampleBilinear(g.foam, x, y)
}
