// Package backdrop computes the warm diagonal gradient drawn behind the
// particles. The hue follows the pointer's vertical position and drifts
// slowly with Perlin noise.
package backdrop

import (
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
)

// Backdrop constants
const (
	BaseHue    = 20.0
	HueRange   = 40.0
	DriftAmp   = 4.0
	DriftSpeed = 0.15 // Noise units per second of animation time

	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Backdrop holds the current gradient hue.
type Backdrop struct {
	noise *perlin.Perlin
	hue   float64
}

// New returns a backdrop whose drift is seeded by seed.
func New(seed int64) *Backdrop {
	return &Backdrop{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
		hue:   BaseHue,
	}
}

// Update recomputes the hue. fraction is how far down the viewport the
// pointer is, in [0,1]; elapsed is the animation clock in seconds.
func (b *Backdrop) Update(fraction, elapsed float64) {
	if math.IsNaN(fraction) {
		fraction = 0
	}
	fraction = math.Max(0, math.Min(1, fraction))

	drift := 0.0
	if !math.IsNaN(elapsed) && !math.IsInf(elapsed, 0) {
		drift = b.noise.Noise1D(elapsed*DriftSpeed) * DriftAmp
		drift = math.Max(-DriftAmp, math.Min(DriftAmp, drift))
	}
	b.hue = BaseHue + fraction*HueRange + drift
}

// Hue returns the current hue in degrees.
func (b *Backdrop) Hue() float64 { return b.hue }

// Stops returns the three gradient stops at 0%, 50% and 100%.
func (b *Backdrop) Stops() [3]color.RGBA {
	return [3]color.RGBA{
		hslToRGBA(b.hue, 1, 0.20),
		hslToRGBA(0, 0, 0),
		hslToRGBA(b.hue, 1, 0.10),
	}
}

// ColorAt returns the gradient color at t in [0,1] along the diagonal.
func (b *Backdrop) ColorAt(t float64) color.RGBA {
	stops := b.Stops()
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		return lerp(stops[0], stops[1], t*2)
	}
	return lerp(stops[1], stops[2], (t-0.5)*2)
}

// Fill writes a w*h RGBA gradient into pix, top-left to bottom-right.
// pix must hold at least 4*w*h bytes.
func (b *Backdrop) Fill(pix []byte, w, h int) {
	span := float64(w + h - 2)
	if span <= 0 {
		span = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := b.ColorAt(float64(x+y) / span)
			i := 4 * (y*w + x)
			pix[i] = c.R
			pix[i+1] = c.G
			pix[i+2] = c.B
			pix[i+3] = c.A
		}
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xFF}
}

// hslToRGBA converts HSL (hue: 0-360, saturation: 0-1, lightness: 0-1) to an
// opaque color.
func hslToRGBA(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.RGBA{
		uint8(math.Round((r + m) * 255)),
		uint8(math.Round((g + m) * 255)),
		uint8(math.Round((b + m) * 255)),
		0xFF,
	}
}
