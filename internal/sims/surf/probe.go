package surf

// ProbeResult captures telemetry from a deterministic headless surf run,
// used by the probe CLI and the tuning tests.
type ProbeResult struct {
	// StepsSimulated reports how many ticks the run executed.
	StepsSimulated int
	// PulsesInjected counts the wave pulses fed into the horizon row.
	PulsesInjected int
	// TotalEnergy is the energy grid sum at the final tick.
	TotalEnergy float64
	// PeakShoreEnergy tracks the highest single shore-row cell value seen.
	PeakShoreEnergy float64
	// FoamMass is the foam grid sum at the final tick.
	FoamMass float64
	// PeakFoamMass tracks the highest foam grid sum seen at any tick.
	PeakFoamMass float64
	// BreakingEvents accumulates drained-cell counts across the run.
	BreakingEvents int
	// RingSegments holds the per-ring segment counts at the final tick.
	RingSegments []int
}

// RunProbe resets a world from the config and advances it for the requested
// number of steps, injecting a pulse of the given amplitude every pulseEvery
// ticks (0 disables injection). The run is deterministic for identical
// inputs.
func RunProbe(cfg Config, steps, pulseEvery int, amplitude float64) ProbeResult {
	if steps <= 0 {
		steps = 1
	}
	world := NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	result := ProbeResult{StepsSimulated: steps}
	shoreRow := (world.h - 1) * world.w
	for step := 0; step < steps; step++ {
		if pulseEvery > 0 && step%pulseEvery == 0 {
			world.InjectWavePulse(amplitude)
			result.PulsesInjected++
		}
		world.Step()
		result.BreakingEvents += len(world.BreakingCells())

		heights := world.energy.Height()
		for x := 0; x < world.w; x++ {
			if v := float64(heights[shoreRow+x]); v > result.PeakShoreEnergy {
				result.PeakShoreEnergy = v
			}
		}
		var foamMass float64
		for _, v := range world.foam.Foam() {
			foamMass += float64(v)
		}
		if foamMass > result.PeakFoamMass {
			result.PeakFoamMass = foamMass
		}
		if step == steps-1 {
			result.FoamMass = foamMass
			for _, v := range heights {
				result.TotalEnergy += float64(v)
			}
		}
	}

	for _, ring := range world.ContourRings() {
		result.RingSegments = append(result.RingSegments, len(ring.Segments))
	}
	return result
}
