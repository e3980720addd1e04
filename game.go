package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/unishare-particles/internal/backdrop"
	"github.com/olivierh59500/unishare-particles/internal/config"
	"github.com/olivierh59500/unishare-particles/internal/counter"
	"github.com/olivierh59500/unishare-particles/internal/input"
	"github.com/olivierh59500/unishare-particles/internal/particles"
)

// Rendering constants
const (
	GlowScale   = 2.0  // Halo radius relative to particle diameter
	GlowOpacity = 0.25 // Halo alpha relative to particle opacity
	BackdropW   = 32   // Gradient texture size, scaled up to the screen
	BackdropH   = 18
	HUDMargin   = 12
	HUDLine     = 16
)

// Game struct: hosts the particle field and drives it from Ebitengine's loop
type Game struct {
	field    *particles.Field
	frame    []particles.RenderCommand
	backdrop *backdrop.Backdrop
	stats    *counter.Group
	viewport particles.Viewport
	dt       float64

	// pointer
	touchIDs []ebiten.TouchID
	pointer  input.Tracker

	// toggles
	ShowHUD bool
	Glow    bool

	bg    *ebiten.Image
	bgPix []byte
}

// NewGame creates the scene from cfg; seed drives particle placement and
// backdrop drift.
func NewGame(cfg *config.Config, seed int64) *Game {
	vp := particles.Viewport{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}
	rng := rand.New(rand.NewSource(seed))
	field := particles.NewField(cfg.Particles.Count, vp, rng)

	entries := cfg.Stats()
	counters := make([]*counter.Counter, len(entries))
	for i, e := range entries {
		counters[i] = counter.New(e.Name, e.Target, time.Duration(e.DurationMS)*time.Millisecond)
	}

	return &Game{
		field:    field,
		frame:    field.Frame(),
		backdrop: backdrop.New(seed),
		stats:    counter.NewGroup(counters...),
		viewport: vp,
		dt:       1 / float64(cfg.Window.TPS),
		ShowHUD:  true,
		Glow:     cfg.Particles.Glow,
		bgPix:    make([]byte, 4*BackdropW*BackdropH),
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	ptr := g.pollPointer()
	g.frame = g.field.Tick(ptr, g.viewport, g.dt)

	fraction := 0.0
	if ptr.Present && g.viewport.Height > 0 {
		fraction = ptr.Pos.Y / g.viewport.Height
	}
	g.backdrop.Update(fraction, g.field.Elapsed())
	g.stats.Update(time.Duration(g.dt * float64(time.Second)))
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackdrop(screen)

	for i, p := range g.field.Particles() {
		c := g.frame[i]
		x, y := float32(c.Pos.X), float32(c.Pos.Y)
		if g.Glow {
			vector.DrawFilledCircle(screen, x, y, float32(p.Size*GlowScale/2), withAlpha(p.Color, c.Opacity*GlowOpacity), true)
		}
		vector.DrawFilledCircle(screen, x, y, float32(p.Size/2), withAlpha(p.Color, c.Opacity), true)
	}

	if g.ShowHUD {
		g.drawHUD(screen)
	}
}

// Layout tracks the window size so the field wraps against the live viewport
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewport = particles.Viewport{
		Width:  float64(outsideWidth),
		Height: float64(outsideHeight),
	}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard toggles
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ShowHUD = !g.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.Glow = !g.Glow
	}
	return nil
}

// pollPointer samples touch and cursor and lets the tracker decide presence
func (g *Game) pollPointer() particles.Pointer {
	var s input.Sample
	s.CursorX, s.CursorY = ebiten.CursorPosition()
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		s.Touching = true
		s.TouchX, s.TouchY = ebiten.TouchPosition(g.touchIDs[0])
	}
	return g.pointer.Update(s)
}

func (g *Game) drawBackdrop(screen *ebiten.Image) {
	if g.bg == nil {
		g.bg = ebiten.NewImage(BackdropW, BackdropH)
	}
	g.backdrop.Fill(g.bgPix, BackdropW, BackdropH)
	g.bg.WritePixels(g.bgPix)

	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sw/BackdropW, sh/BackdropH)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.bg, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	y := HUDMargin
	for _, c := range g.stats.Counters {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", c.Label, c.Value()), HUDMargin, y)
		y += HUDLine
	}
	status := fmt.Sprintf("TPS: %0.1f  FPS: %0.1f  particles: %d  ticks: %d  hue: %0.0f  [H] hud  [G] glow",
		ebiten.ActualTPS(), ebiten.ActualFPS(), g.field.Len(), g.field.Ticks(), g.backdrop.Hue())
	ebitenutil.DebugPrintAt(screen, status, HUDMargin, screen.Bounds().Dy()-HUDMargin-HUDLine)
}

// withAlpha returns col with alpha scaled to opacity in [0,1]
func withAlpha(col color.RGBA, opacity float64) color.NRGBA {
	opacity = math.Max(0, math.Min(1, opacity))
	return color.NRGBA{R: col.R, G: col.G, B: col.B, A: uint8(math.Round(opacity * 255))}
}
