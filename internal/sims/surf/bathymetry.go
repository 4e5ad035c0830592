package surf

import "math"

// minDepth is the global depth floor. Downstream damping divides by
// depth^exponent, so depth must never reach zero.
const minDepth = 0.1

// Bathymetry maps a normalized shoreline position to water depth. It is
// built once from the config and read-only afterwards.
type Bathymetry struct {
	deepDepth  float64
	shoreDepth float64
	lobes      []Lobe
	point      PointBreak
}

// NewBathymetry constructs a depth field from the provided parameters.
func NewBathymetry(p Params) *Bathymetry {
	lobes := make([]Lobe, len(p.SandbarLobes))
	copy(lobes, p.SandbarLobes)
	return &Bathymetry{
		deepDepth:  p.DeepDepth,
		shoreDepth: p.ShoreDepth,
		lobes:      lobes,
		point:      p.Point,
	}
}

// Depth returns the water depth at lateral position x (0..1) and shoreward
// progress (0 horizon, 1 shore). The result is always at least minDepth;
// out-of-range inputs simply contribute no feature bonus.
func (b *Bathymetry) Depth(x, progress float64) float64 {
	base := b.deepDepth + (b.shoreDepth-b.deepDepth)*progress
	bonus := b.sandbarBonus(x, progress) + b.pointBonus(x, progress)
	depth := base - bonus
	if depth < minDepth {
		return minDepth
	}
	return depth
}

// sandbarBonus evaluates the multi-lobe sandbar. Overlapping lobes take the
// maximum contribution rather than the sum, so merged lobes read as one bar
// instead of stacking into an island.
func (b *Bathymetry) sandbarBonus(x, progress float64) float64 {
	best := 0.0
	for _, lobe := range b.lobes {
		if lobe.RadiusX <= 0 || lobe.RadiusY <= 0 {
			continue
		}
		dx := (x - lobe.X) / lobe.RadiusX
		dy := (progress - lobe.Y) / lobe.RadiusY
		d := math.Sqrt(dx*dx + dy*dy)
		if d >= 1 {
			continue
		}
		falloff := math.Cos(d * math.Pi / 2)
		contribution := lobe.Bonus * falloff * falloff
		if contribution > best {
			best = contribution
		}
	}
	return best
}

// pointBonus evaluates the triangular shore point. It is inert until
// progress passes the feature's start, then deepens its bite quadratically
// towards the shore.
func (b *Bathymetry) pointBonus(x, progress float64) float64 {
	pt := b.point
	if pt.Bonus <= 0 || pt.HalfWidth <= 0 {
		return 0
	}
	if progress <= pt.StartProgress || pt.StartProgress >= 1 {
		return 0
	}
	into := (progress - pt.StartProgress) / (1 - pt.StartProgress)
	if into > 1 {
		into = 1
	}
	lateral := 1 - math.Abs(x-pt.X)/pt.HalfWidth
	if lateral <= 0 {
		return 0
	}
	shape := lateral * into
	return pt.Bonus * shape * shape
}
