//go:build ebiten

package app

import (
	"image/color"
	"time"

	"surfsim/internal/core"
	"surfsim/internal/render"
	"surfsim/internal/sims/surf"
	"surfsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Swell rhythm for the demo: pulses arrive every pulseInterval ticks with
// an amplitude that breathes between the low and high marks, so waves come
// in sets instead of a flat train.
const (
	pulseInterval   = 150
	swellLow        = 0.35
	swellHigh       = 1.0
	swellHalfPeriod = 18.0
)

type paletteProvider interface {
	Palette() []color.RGBA
}

type pulseInjector interface {
	InjectWavePulse(amplitude float64)
}

type ringProvider interface {
	ContourRings() []surf.RingGeometry
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	palette []color.RGBA

	swell       *gween.Tween
	swellRising bool
	swellAmp    float64
	tick        int

	scale     int
	panel     int
	seed      int64
	paused    bool
	tickOnce  bool
	showRings bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, panelWidth int) *Game {
	size := sim.Size()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(size.W, size.H),
		overlay:   ui.NewOverlay(sim, scale),
		hud:       ui.NewHUD(sim, panelWidth),
		palette:   []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}},
		scale:     scale,
		panel:     panelWidth,
		seed:      seed,
		showRings: true,
	}
	if provider, ok := sim.(paletteProvider); ok {
		if pal := provider.Palette(); len(pal) > 0 {
			g.palette = pal
		}
	}
	g.swellRising = true
	g.swell = gween.New(swellLow, swellHigh, swellHalfPeriod, ease.InOutSine)
	g.swellAmp = swellLow
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.tick = 0
	g.swellRising = true
	g.swell = gween.New(swellLow, swellHigh, swellHalfPeriod, ease.InOutSine)
	g.swellAmp = swellLow
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.showRings = !g.showRings
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.sim.Size().W * g.scale)
	}

	if (!g.paused) || g.tickOnce {
		g.advanceSwell()
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// advanceSwell eases the pulse amplitude along the swell cycle and injects
// a wave pulse on the interval boundary.
func (g *Game) advanceSwell() {
	dt := float32(1.0) / float32(ebiten.TPS())
	amp, done := g.swell.Update(dt)
	g.swellAmp = float64(amp)
	if done {
		g.swellRising = !g.swellRising
		if g.swellRising {
			g.swell = gween.New(swellLow, swellHigh, swellHalfPeriod, ease.InOutSine)
		} else {
			g.swell = gween.New(swellHigh, swellLow, swellHalfPeriod, ease.InOutSine)
		}
	}

	g.tick++
	if g.tick%pulseInterval != 0 {
		return
	}
	if injector, ok := g.sim.(pulseInjector); ok {
		injector.InjectWavePulse(g.swellAmp)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.showRings {
		if provider, ok := g.sim.(ringProvider); ok {
			for _, ring := range provider.ContourRings() {
				width := float32(ring.Ring.LineWidth)
				g.painter.StrokeSegments(screen, ring.Segments, g.scale, width, ring.Ring.Color)
			}
		}
	}
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
	}
}

// Layout returns the logical screen size including the parameter panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.panel, s.H * g.scale
}
