package particles

import (
	"image/color"
	"math"
)

// Field constants
const (
	DefaultCount     = 50
	AttractionRadius = 100.0
	AttractionGain   = 0.1
	Damping          = 0.99
	MinSize          = 2.0
	SizeSpread       = 6.0
	MinOpacity       = 0.3
	OpacitySpread    = 0.7
	MaxInitialSpeed  = 1.0 // Per axis, units per tick
)

// Palette holds the three particle colors (#FF4500, #FF6B00, #CC3700).
var Palette = [3]color.RGBA{
	{0xFF, 0x45, 0x00, 0xFF},
	{0xFF, 0x6B, 0x00, 0xFF},
	{0xCC, 0x37, 0x00, 0xFF},
}

// Rand is the random source used to seed particles. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Pointer is the pointer state sampled at the start of a tick.
type Pointer struct {
	Pos     Vec2
	Present bool
}

// Viewport is the size of the rendering surface.
type Viewport struct {
	Width, Height float64
}

// Particle struct: one slot of the field
type Particle struct {
	Pos         Vec2
	Vel         Vec2
	Size        float64
	BaseOpacity float64
	Opacity     float64
	Color       color.RGBA
}

// RenderCommand is what the render sink needs to draw particle i.
type RenderCommand struct {
	Pos     Vec2
	Opacity float64
}

// Field owns a fixed set of particles and advances them once per frame.
// It is not safe for concurrent use; the host calls Tick from its frame
// callback only.
type Field struct {
	particles []Particle
	out       []RenderCommand
	elapsed   float64
	ticks     uint64
}

// NewField creates a field of n particles scattered over vp.
func NewField(n int, vp Viewport, rng Rand) *Field {
	if n < 0 {
		n = 0
	}
	f := &Field{
		particles: make([]Particle, n),
		out:       make([]RenderCommand, n),
	}
	for i := range f.particles {
		f.particles[i] = newParticle(vp, rng)
		f.out[i] = RenderCommand{Pos: f.particles[i].Pos, Opacity: f.particles[i].Opacity}
	}
	return f
}

func newParticle(vp Viewport, rng Rand) Particle {
	size := rng.Float64()*SizeSpread + MinSize
	opacity := rng.Float64()*OpacitySpread + MinOpacity
	ci := int(rng.Float64() * float64(len(Palette)))
	if ci >= len(Palette) {
		ci = len(Palette) - 1
	}
	x := rng.Float64() * finiteOrZero(vp.Width)
	y := rng.Float64() * finiteOrZero(vp.Height)
	vx := (rng.Float64() - 0.5) * 2 * MaxInitialSpeed
	vy := (rng.Float64() - 0.5) * 2 * MaxInitialSpeed
	return Particle{
		Pos:         Vec2{x, y},
		Vel:         Vec2{vx, vy},
		Size:        size,
		BaseOpacity: opacity,
		Opacity:     opacity,
		Color:       Palette[ci],
	}
}

// Len returns the particle count, fixed for the field's lifetime.
func (f *Field) Len() int { return len(f.particles) }

// at returns a copy of particle i.
func (f *Field) at(i int) Particle { return f.particles[i] }

// Particles exposes the particle slice for read-only iteration by the renderer.
func (f *Field) Particles() []Particle { return f.particles }

// Frame returns the render commands of the last tick, or of the initial state
// before the first tick.
func (f *Field) Frame() []RenderCommand { return f.out }

// Elapsed returns the sum of dt hints passed to Tick.
func (f *Field) Elapsed() float64 { return f.elapsed }

// Ticks returns the number of completed ticks.
func (f *Field) Ticks() uint64 { return f.ticks }

// Tick advances every particle by one frame and returns one render command per
// particle in creation order. The returned slice is reused by the next call.
//
// dtHint does not scale the physics: constants are tuned per tick at ~60 TPS.
// It only feeds Elapsed.
func (f *Field) Tick(ptr Pointer, vp Viewport, dtHint float64) []RenderCommand {
	if !isFinite(ptr.Pos.X) || !isFinite(ptr.Pos.Y) {
		ptr.Present = false
	}
	wrapX := validDim(vp.Width)
	wrapY := validDim(vp.Height)

	for i := range f.particles {
		p := &f.particles[i]
		prev := *p
		step(p, ptr)
		if wrapX {
			p.Pos.X = wrap(p.Pos.X, vp.Width)
		}
		if wrapY {
			p.Pos.Y = wrap(p.Pos.Y, vp.Height)
		}
		if !isFinite(p.Pos.X) || !isFinite(p.Pos.Y) || !isFinite(p.Vel.X) || !isFinite(p.Vel.Y) {
			// Drop this particle's frame.
			*p = prev
			p.Vel = Vec2{}
			if !isFinite(p.Pos.X) || !isFinite(p.Pos.Y) {
				p.Pos = Vec2{}
			}
		}
		p.Opacity = clamp01(p.Opacity)
		f.out[i] = RenderCommand{Pos: p.Pos, Opacity: p.Opacity}
	}

	if isFinite(dtHint) && dtHint > 0 {
		f.elapsed += dtHint
	}
	f.ticks++
	return f.out
}

// step integrates position, then applies pointer attraction or damping.
func step(p *Particle, ptr Pointer) {
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y

	if ptr.Present {
		dx := ptr.Pos.X - p.Pos.X
		dy := ptr.Pos.Y - p.Pos.Y
		distance := math.Sqrt(dx*dx + dy*dy)
		if distance > 0 && distance < AttractionRadius {
			force := (AttractionRadius - distance) / AttractionRadius
			p.Vel.X += (dx / distance) * force * AttractionGain
			p.Vel.Y += (dy / distance) * force * AttractionGain
			p.Opacity = math.Min(1, p.BaseOpacity+force)
			return
		}
	}

	p.Opacity = p.BaseOpacity
	p.Vel.X *= Damping
	p.Vel.Y *= Damping
}

// wrap resets a coordinate that left [0, dim] to the opposite edge. This is a
// hard reset, not a modulo: dim+5 becomes 0, -5 becomes dim.
func wrap(v, dim float64) float64 {
	if v > dim {
		return 0
	}
	if v < 0 {
		return dim
	}
	return v
}

func validDim(d float64) bool {
	return d > 0 && !math.IsInf(d, 0)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrZero(v float64) float64 {
	if !validDim(v) {
		return 0
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
