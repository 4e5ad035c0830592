package surf

import (
	"surfsim/internal/core"
	"surfsim/pkg/contour"
	pkgcore "surfsim/pkg/core"
)

// World owns the surf simulation state: the bathymetry, the energy field,
// the foam grid pair, and the display buffer. It is the single orchestrator
// the game loop drives; no other code mutates the grids.
type World struct {
	cfg Config

	w, h int
	dt   float64

	bathy  *Bathymetry
	energy *EnergyField
	foam   *FoamGrid

	// depthCache holds per-cell depths so the per-tick breaking scan and
	// the overlay avoid re-evaluating the feature math.
	depthCache []float32
	breaking   [][2]int
	display    []uint8

	rng *pkgcore.RNG
}

// New returns a surf world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a surf world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:        cfg,
		w:          cfg.Width,
		h:          cfg.Height,
		dt:         1 / float64(tps),
		energy:     NewEnergyField(cfg.Width, cfg.Height),
		foam:       NewFoamGrid(cfg.Width, cfg.Height),
		depthCache: make([]float32, total),
		display:    make([]uint8, total),
		rng:        pkgcore.NewRNG(cfg.Seed),
	}
	w.rebuildBathymetry(cfg.Params)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "surf" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Bathymetry exposes the active depth field.
func (w *World) Bathymetry() *Bathymetry { return w.bathy }

// Energy exposes the energy field for point sampling.
func (w *World) Energy() *EnergyField { return w.energy }

// Foam exposes the foam grid pair.
func (w *World) Foam() *FoamGrid { return w.foam }

// Reset rebuilds the bathymetry with deterministic jitter and zeroes every
// grid. Seed 0 falls back to the config seed, matching the registry
// convention.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = pkgcore.NewRNG(effective)

	params := w.cfg.Params
	if params.LobeJitter > 0 {
		lobes := make([]Lobe, len(params.SandbarLobes))
		copy(lobes, params.SandbarLobes)
		for i := range lobes {
			lobes[i].X = w.rng.Jitter(lobes[i].X, params.LobeJitter)
			lobes[i].Y = w.rng.Jitter(lobes[i].Y, params.LobeJitter)
		}
		params.SandbarLobes = lobes
	}
	w.rebuildBathymetry(params)

	w.energy.Clear()
	w.foam.Clear()
	w.breaking = w.breaking[:0]
	for i := range w.display {
		w.display[i] = 0
	}
}

func (w *World) rebuildBathymetry(params Params) {
	w.bathy = NewBathymetry(params)
	invW := 1.0
	if w.w > 1 {
		invW = 1 / float64(w.w-1)
	}
	invH := 1.0
	if w.h > 1 {
		invH = 1 / float64(w.h-1)
	}
	for y := 0; y < w.h; y++ {
		progress := float64(y) * invH
		for x := 0; x < w.w; x++ {
			w.depthCache[y*w.w+x] = float32(w.bathy.Depth(float64(x)*invW, progress))
		}
	}
}

// DepthAt samples the cached per-cell depth at grid coordinates.
func (w *World) DepthAt(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= w.w {
		x = w.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= w.h {
		y = w.h - 1
	}
	return float64(w.depthCache[y*w.w+x])
}

// InjectWavePulse feeds a wave-spawn event into the energy field. Spawn
// cadence and amplitude scheduling live upstream; the world only forwards
// the amplitude.
func (w *World) InjectWavePulse(amplitude float64) {
	w.energy.InjectWavePulse(amplitude)
}

// Step advances the world by one fixed tick. The phase ordering is the
// contract: propagate energy, detect breaking and drain it, deposit the
// drained amount into the transfer grid, then run the foam pass which
// consumes and clears the transfer. Accumulations landing after the foam
// pass belong to the next tick.
func (w *World) Step() {
	params := w.cfg.Params

	w.energy.Update(w.depthFn(), w.dt, EnergyOptions{
		TravelDuration:          params.TravelDuration,
		DepthDampingCoefficient: params.DepthDampingCoefficient,
		DepthDampingExponent:    params.DepthDampingExponent,
		LateralDiffusionRate:    params.LateralDiffusionRate,
		BandCoherenceRate:       params.BandCoherenceRate,
	})

	w.detectBreaking()

	w.foam.Update(w.dt, FoamOptions{
		DecayRate:    params.DecayRate,
		DepositScale: params.DepositScale,
		AdvectRate:   params.AdvectRate,
	})

	w.refreshDisplay()
}

// depthFn binds the bathymetry to the energy field's sampling contract.
func (w *World) depthFn() DepthFn {
	bathy := w.bathy
	return func(x, y float64) float64 {
		return bathy.Depth(x, y)
	}
}

// detectBreaking applies the breaker-index rule to every cell past the
// minimum progress and routes the drained energy into the foam transfer
// grid. The drain returns the actually-removed amount, which is the
// conserved quantity deposited.
func (w *World) detectBreaking() {
	params := w.cfg.Params
	w.breaking = w.breaking[:0]
	if params.BreakerIndex <= 0 || params.BreakerDrainRate <= 0 {
		return
	}
	heights := w.energy.Height()
	startRow := int(params.BreakerMinProgress * float64(w.h-1))
	if startRow < 0 {
		startRow = 0
	}
	for y := startRow; y < w.h; y++ {
		row := y * w.w
		for x := 0; x < w.w; x++ {
			height := float64(heights[row+x])
			if height <= 0 {
				continue
			}
			depth := float64(w.depthCache[row+x])
			if height <= params.BreakerIndex*depth {
				continue
			}
			drained := w.energy.DrainEnergyAt(float64(x), float64(y), height*params.BreakerDrainRate*w.dt)
			if drained > 0 {
				w.foam.AccumulateEnergyTransfer(float64(x), float64(y), drained)
				w.breaking = append(w.breaking, [2]int{x, y})
			}
		}
	}
}

// FoamAt samples foam density at an arbitrary grid position, for gameplay
// queries such as foam intensity under a player.
func (w *World) FoamAt(x, y float64) float64 {
	return w.foam.Sample(x, y)
}

// EnergyAt samples wave energy at an arbitrary grid position.
func (w *World) EnergyAt(x, y float64) float64 {
	return w.energy.HeightAt(x, y)
}

// BreakingCells lists the cells that drained energy during the last tick.
func (w *World) BreakingCells() [][2]int { return w.breaking }

// intensityGrid builds the transient blurred copy of the foam layer that
// contour extraction runs against.
func (w *World) intensityGrid() []float32 {
	grid := contour.BuildIntensityGrid(w.foam.Foam(), w.w, w.h)
	contour.BoxBlur(grid, w.w, w.h, w.cfg.Params.BlurPasses)
	return grid
}

// Contours extracts traced closed foam boundaries at the given threshold.
func (w *World) Contours(threshold float64) [][]contour.Point {
	return contour.ExtractContours(w.intensityGrid(), w.w, w.h, threshold)
}

// LineSegments extracts disconnected foam boundary segments at the given
// threshold, the cheap path for stroke rendering.
func (w *World) LineSegments(threshold float64) []contour.Segment {
	return contour.ExtractLineSegments(w.intensityGrid(), w.w, w.h, threshold)
}

// RingGeometry pairs a configured ring with its extracted segments.
type RingGeometry struct {
	Ring     Ring
	Segments []contour.Segment
}

// ContourRings extracts segments for every configured ring against a single
// intensity grid, ordered low-to-high threshold so denser rings draw last.
func (w *World) ContourRings() []RingGeometry {
	if len(w.cfg.Params.Rings) == 0 {
		return nil
	}
	grid := w.intensityGrid()
	rings := make([]RingGeometry, 0, len(w.cfg.Params.Rings))
	for _, ring := range w.cfg.Params.Rings {
		rings = append(rings, RingGeometry{
			Ring:     ring,
			Segments: contour.ExtractLineSegments(grid, w.w, w.h, ring.Threshold),
		})
	}
	return rings
}

func init() {
	core.Register("surf", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
