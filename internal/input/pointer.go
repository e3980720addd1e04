// Package input turns raw touch and cursor samples into the pointer state the
// particle field reads each tick.
package input

import "github.com/olivierh59500/unishare-particles/internal/particles"

// Sample is one frame of raw pointer input.
type Sample struct {
	CursorX, CursorY int
	Touching         bool
	TouchX, TouchY   int
}

// Tracker decides pointer presence. An active touch always wins; the cursor
// counts as absent until it has moved at least once.
type Tracker struct {
	seen   bool
	moved  bool
	lastCX int
	lastCY int
}

// Update consumes one sample and returns the pointer for this tick.
func (t *Tracker) Update(s Sample) particles.Pointer {
	if s.Touching {
		return particles.Pointer{
			Pos:     particles.Vec2{X: float64(s.TouchX), Y: float64(s.TouchY)},
			Present: true,
		}
	}

	if t.seen && (s.CursorX != t.lastCX || s.CursorY != t.lastCY) {
		t.moved = true
	}
	t.seen = true
	t.lastCX, t.lastCY = s.CursorX, s.CursorY

	return particles.Pointer{
		Pos:     particles.Vec2{X: float64(s.CursorX), Y: float64(s.CursorY)},
		Present: t.moved,
	}
}
