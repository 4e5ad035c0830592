package surf

import (
	"image/color"
	"strconv"
)

// Lobe describes one elliptical bump of the sandbar feature. Coordinates are
// normalized: X is lateral position, Y is shoreward progress.
type Lobe struct {
	X, Y    float64
	RadiusX float64
	RadiusY float64
	Bonus   float64
}

// PointBreak describes the triangular shore point/reef feature.
type PointBreak struct {
	X             float64
	HalfWidth     float64
	StartProgress float64
	Bonus         float64
}

// Ring pairs a foam threshold with its stroke appearance. Rings are drawn
// low-to-high threshold so denser rings overlay lighter ones.
type Ring struct {
	Threshold float64
	Color     color.RGBA
	LineWidth float64
}

// Params holds the tunable coefficients of the surf simulation.
type Params struct {
	DeepDepth  float64
	ShoreDepth float64

	SandbarLobes []Lobe
	Point        PointBreak
	LobeJitter   float64

	TravelDuration          float64
	DepthDampingCoefficient float64
	DepthDampingExponent    float64
	LateralDiffusionRate    float64
	BandCoherenceRate       float64

	BreakerIndex       float64
	BreakerDrainRate   float64
	BreakerMinProgress float64

	DepositScale float64
	DecayRate    float64
	AdvectRate   float64

	BlurPasses int
	Rings      []Ring
}

// Config controls the surf simulation dimensions and coefficients.
type Config struct {
	Width  int
	Height int

	Seed int64

	// TPS fixes the internal tick length used by Step.
	TPS int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  192,
		Height: 144,
		Seed:   1337,
		TPS:    60,
		Params: Params{
			DeepDepth:  10,
			ShoreDepth: 0.4,
			SandbarLobes: []Lobe{
				{X: 0.30, Y: 0.62, RadiusX: 0.16, RadiusY: 0.10, Bonus: 3.6},
				{X: 0.48, Y: 0.66, RadiusX: 0.20, RadiusY: 0.12, Bonus: 4.2},
				{X: 0.66, Y: 0.60, RadiusX: 0.14, RadiusY: 0.09, Bonus: 3.3},
			},
			Point: PointBreak{
				X:             0.86,
				HalfWidth:     0.22,
				StartProgress: 0.55,
				Bonus:         3.4,
			},
			LobeJitter: 0.04,

			TravelDuration:          14,
			DepthDampingCoefficient: 0.6,
			DepthDampingExponent:    1.4,
			LateralDiffusionRate:    0,
			BandCoherenceRate:       0,

			BreakerIndex:       0.78,
			BreakerDrainRate:   2.5,
			BreakerMinProgress: 0.25,

			DepositScale: 0.9,
			DecayRate:    0.35,
			AdvectRate:   0.6,

			BlurPasses: 2,
			Rings: []Ring{
				{Threshold: 0.12, Color: color.RGBA{R: 210, G: 226, B: 235, A: 170}, LineWidth: 1},
				{Threshold: 0.32, Color: color.RGBA{R: 235, G: 244, B: 250, A: 210}, LineWidth: 1.5},
				{Threshold: 0.58, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, LineWidth: 2},
			},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["deep_depth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DeepDepth = parsed
		}
	}
	if v, ok := cfg["shore_depth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ShoreDepth = parsed
		}
	}
	if v, ok := cfg["travel_duration"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TravelDuration = parsed
		}
	}
	if v, ok := cfg["damping_coefficient"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DepthDampingCoefficient = parsed
		}
	}
	if v, ok := cfg["damping_exponent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DepthDampingExponent = parsed
		}
	}
	if v, ok := cfg["lateral_diffusion_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.LateralDiffusionRate = parsed
		}
	}
	if v, ok := cfg["band_coherence_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BandCoherenceRate = parsed
		}
	}
	if v, ok := cfg["breaker_index"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.BreakerIndex = parsed
		}
	}
	if v, ok := cfg["breaker_drain_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BreakerDrainRate = parsed
		}
	}
	if v, ok := cfg["breaker_min_progress"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BreakerMinProgress = parsed
		}
	}
	if v, ok := cfg["deposit_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DepositScale = parsed
		}
	}
	if v, ok := cfg["decay_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DecayRate = parsed
		}
	}
	if v, ok := cfg["advect_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AdvectRate = parsed
		}
	}
	if v, ok := cfg["blur_passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BlurPasses = parsed
		}
	}
	if v, ok := cfg["lobe_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.LobeJitter = parsed
		}
	}
	return c
}
