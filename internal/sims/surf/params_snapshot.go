package surf

import (
	"strconv"

	"surfsim/internal/core"
)

// Parameters reports the current tunables grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Bathymetry",
			Params: []core.Parameter{
				floatParam("deep_depth", "Deep depth", params.DeepDepth),
				floatParam("shore_depth", "Shore depth", params.ShoreDepth),
				floatParam("lobe_jitter", "Lobe jitter", params.LobeJitter),
			},
		},
		{
			Name: "Energy",
			Params: []core.Parameter{
				floatParam("travel_duration", "Travel duration", params.TravelDuration),
				floatParam("damping_coefficient", "Damping coefficient", params.DepthDampingCoefficient),
				floatParam("damping_exponent", "Damping exponent", params.DepthDampingExponent),
				floatParam("lateral_diffusion_rate", "Lateral diffusion rate", params.LateralDiffusionRate),
				floatParam("band_coherence_rate", "Band coherence rate", params.BandCoherenceRate),
			},
		},
		{
			Name: "Breaking",
			Params: []core.Parameter{
				floatParam("breaker_index", "Breaker index", params.BreakerIndex),
				floatParam("breaker_drain_rate", "Breaker drain rate", params.BreakerDrainRate),
				floatParam("breaker_min_progress", "Breaker min progress", params.BreakerMinProgress),
			},
		},
		{
			Name: "Foam",
			Params: []core.Parameter{
				floatParam("deposit_scale", "Deposit scale", params.DepositScale),
				floatParam("decay_rate", "Decay rate", params.DecayRate),
				floatParam("advect_rate", "Advect rate", params.AdvectRate),
				intParam("blur_passes", "Blur passes", params.BlurPasses),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable knobs with their steps and
// bounds.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("travel_duration", "Travel duration", 1, 1, 60),
		floatControl("damping_coefficient", "Damping coefficient", 0.1, 0, 10),
		floatControl("damping_exponent", "Damping exponent", 0.1, 0.5, 4),
		floatControl("breaker_index", "Breaker index", 0.02, 0.1, 2),
		floatControl("breaker_drain_rate", "Breaker drain rate", 0.25, 0, 20),
		floatControl("deposit_scale", "Deposit scale", 0.05, 0, 5),
		floatControl("decay_rate", "Decay rate", 0.05, 0, 5),
		floatControl("advect_rate", "Advect rate", 0.05, 0, 5),
	}
}

// SetFloatParameter updates a float tunable by key. It reports whether the
// key was recognized and the value accepted.
func (w *World) SetFloatParameter(key string, value float64) bool {
	params := &w.cfg.Params
	switch key {
	case "travel_duration":
		if value <= 0 {
			return false
		}
		params.TravelDuration = value
	case "damping_coefficient":
		if value < 0 {
			return false
		}
		params.DepthDampingCoefficient = value
	case "damping_exponent":
		if value <= 0 {
			return false
		}
		params.DepthDampingExponent = value
	case "lateral_diffusion_rate":
		if value < 0 {
			return false
		}
		params.LateralDiffusionRate = value
	case "band_coherence_rate":
		if value < 0 {
			return false
		}
		params.BandCoherenceRate = value
	case "breaker_index":
		if value <= 0 {
			return false
		}
		params.BreakerIndex = value
	case "breaker_drain_rate":
		if value < 0 {
			return false
		}
		params.BreakerDrainRate = value
	case "breaker_min_progress":
		if value < 0 || value > 1 {
			return false
		}
		params.BreakerMinProgress = value
	case "deposit_scale":
		if value < 0 {
			return false
		}
		params.DepositScale = value
	case "decay_rate":
		if value < 0 {
			return false
		}
		params.DecayRate = value
	case "advect_rate":
		if value < 0 {
			return false
		}
		params.AdvectRate = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable by key.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "blur_passes":
		if value < 0 {
			return false
		}
		w.cfg.Params.BlurPasses = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    min,
		Max:    max,
		HasMin: true,
		HasMax: true,
	}
}
