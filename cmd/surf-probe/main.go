package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"surfsim/internal/core"
	"surfsim/internal/sims/surf"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	steps := flag.Int("steps", 600, "number of ticks to simulate")
	width := flag.Int("width", 192, "grid width")
	height := flag.Int("height", 144, "grid height")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	pulseEvery := flag.Int("pulse-every", 150, "ticks between wave pulses (0 disables injection)")
	amplitude := flag.Float64("amplitude", 1.0, "energy amplitude of each injected pulse")
	watch := flag.Bool("watch", false, "pace the run at the configured TPS and report once per second")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	settings := map[string]string{
		"w":    strconv.Itoa(*width),
		"h":    strconv.Itoa(*height),
		"seed": strconv.FormatInt(*seed, 10),
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		settings[parts[0]] = parts[1]
	}
	cfg := surf.FromMap(settings)

	if *watch {
		runWatch(cfg, *steps, *pulseEvery, *amplitude)
		return
	}

	result := surf.RunProbe(cfg, *steps, *pulseEvery, *amplitude)
	printResult(cfg, result)
}

// runWatch advances the world in real time at the configured TPS and prints
// a telemetry line every simulated second.
func runWatch(cfg surf.Config, steps, pulseEvery int, amplitude float64) {
	world := surf.NewWithConfig(cfg)
	world.Reset(cfg.Seed)

	timer := core.NewFixedStep(cfg.TPS)
	reportEvery := cfg.TPS
	if reportEvery <= 0 {
		reportEvery = 60
	}

	step := 0
	breaking := 0
	for step < steps {
		if !timer.ShouldStep() {
			continue
		}
		if pulseEvery > 0 && step%pulseEvery == 0 {
			world.InjectWavePulse(amplitude)
		}
		world.Step()
		breaking += len(world.BreakingCells())
		step++
		if step%reportEvery == 0 {
			fmt.Printf("t=%4ds  foam=%8.2f  breaking=%6d\n", step/reportEvery, foamMass(world), breaking)
		}
	}
}

func foamMass(world *surf.World) float64 {
	var mass float64
	for _, v := range world.Foam().Foam() {
		mass += float64(v)
	}
	return mass
}

func printResult(cfg surf.Config, result surf.ProbeResult) {
	fmt.Printf("Run: %dx%d, seed %d, %d steps, %d pulses injected\n",
		cfg.Width, cfg.Height, cfg.Seed, result.StepsSimulated, result.PulsesInjected)
	fmt.Printf("Energy: total %.3f, peak shore cell %.3f\n",
		result.TotalEnergy, result.PeakShoreEnergy)
	fmt.Printf("Foam: final mass %.2f, peak mass %.2f\n",
		result.FoamMass, result.PeakFoamMass)
	fmt.Printf("Breaking: %d cell events\n", result.BreakingEvents)
	for i, count := range result.RingSegments {
		threshold := 0.0
		if i < len(cfg.Params.Rings) {
			threshold = cfg.Params.Rings[i].Threshold
		}
		fmt.Printf("Ring %d (threshold %.2f): %d segments\n", i, threshold, count)
	}
}
