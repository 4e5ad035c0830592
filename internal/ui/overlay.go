//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"surfsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type energyMaskProvider interface {
	EnergyMask() []float32
}

type depthMaskProvider interface {
	DepthMask() []float32
}

type breakingProvider interface {
	BreakingCells() [][2]int
}

// Overlay draws optional debugging visuals on top of the base simulation:
// the normalized energy field, the bathymetry, and markers on cells that
// broke during the last tick.
type Overlay struct {
	sim   core.Sim
	scale int

	showEnergy   bool
	showDepth    bool
	showBreaking bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the debug layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showEnergy = !o.showEnergy
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showDepth = !o.showDepth
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBreaking = !o.showBreaking
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	total := size.W * size.H
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	if o.showEnergy {
		if provider, ok := o.sim.(energyMaskProvider); ok {
			o.drawMask(screen, provider.EnergyMask(), color.RGBA{R: 70, G: 190, B: 230})
		}
	}
	if o.showDepth {
		if provider, ok := o.sim.(depthMaskProvider); ok {
			o.drawMask(screen, provider.DepthMask(), color.RGBA{R: 214, G: 186, B: 110})
		}
	}
	if o.showBreaking {
		if provider, ok := o.sim.(breakingProvider); ok {
			o.drawBreaking(screen, provider.BreakingCells())
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if len(mask) != total {
		return
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i := 0; i < total; i++ {
		base := i * 4
		intensity := clamp01(float64(mask[i]))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.ReplacePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawBreaking(screen *ebiten.Image, cells [][2]int) {
	if o.pixel == nil || len(cells) == 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	markerSize := float64(scale)
	col := color.RGBA{R: 255, G: 250, B: 235, A: 200}
	for _, cell := range cells {
		x := (float64(cell[0]) + 0.5) * float64(scale)
		y := (float64(cell[1]) + 0.5) * float64(scale)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(markerSize, markerSize)
		op.GeoM.Translate(x-markerSize*0.5, y-markerSize*0.5)
		op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
		screen.DrawImage(o.pixel, op)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
