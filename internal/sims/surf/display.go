package surf

import "image/color"

// displayLevels is the number of foam density buckets exposed through the
// display buffer and palette.
const displayLevels = 64

var surfPalette = buildSurfPalette()

// Palette exposes the color ramp used for rendering the foam layer over
// water.
func (w *World) Palette() []color.RGBA {
	return surfPalette
}

func buildSurfPalette() []color.RGBA {
	water := color.RGBA{R: 12, G: 54, B: 92, A: 255}
	foam := color.RGBA{R: 245, G: 250, B: 252, A: 255}
	palette := make([]color.RGBA, displayLevels)
	for i := range palette {
		t := float64(i) / float64(displayLevels-1)
		// Ease the ramp so faint foam reads as a wash instead of a
		// hard step off the water color.
		t = t * t * (3 - 2*t)
		palette[i] = lerpColor(water, foam, t)
	}
	return palette
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: uint8(float64(a.A) + (float64(b.A)-float64(a.A))*t),
	}
}

// refreshDisplay maps the foam layer into palette indices. Foam is clamped
// to [0,1] by the update pass, so the index math stays in range.
func (w *World) refreshDisplay() {
	foam := w.foam.Foam()
	for i, v := range foam {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		w.display[i] = uint8(v * (displayLevels - 1))
	}
}

// EnergyMask returns the energy field normalized into [0,1] for overlay
// rendering. The buffer is rebuilt on every call.
func (w *World) EnergyMask() []float32 {
	heights := w.energy.Height()
	mask := make([]float32, len(heights))
	var peak float32
	for _, v := range heights {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		return mask
	}
	for i, v := range heights {
		if v > 0 {
			mask[i] = v / peak
		}
	}
	return mask
}

// DepthMask returns depth normalized into [0,1] (0 deepest, 1 shallowest)
// for overlay rendering.
func (w *World) DepthMask() []float32 {
	mask := make([]float32, len(w.depthCache))
	minV := w.depthCache[0]
	maxV := w.depthCache[0]
	for _, v := range w.depthCache {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	span := maxV - minV
	if span <= 0 {
		return mask
	}
	for i, v := range w.depthCache {
		mask[i] = 1 - (v-minV)/span
	}
	return mask
}
