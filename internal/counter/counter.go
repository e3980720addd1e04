// Package counter animates numeric stats counting up from zero, one step per
// frame, the way the landing page's impact numbers do.
package counter

import (
	"math"
	"time"
)

const (
	// FrameInterval is the nominal frame length the increment is derived from.
	FrameInterval = 16 * time.Millisecond
	// DefaultDuration is how long a counter takes to reach its target.
	DefaultDuration = 2000 * time.Millisecond
	// DefaultStagger delays each counter in a Group after the previous one.
	DefaultStagger = 300 * time.Millisecond
)

// Counter counts from zero up to Target in fixed per-frame increments.
type Counter struct {
	Label     string
	target    float64
	increment float64
	current   float64
}

// New returns a counter reaching target after roughly duration worth of frames.
func New(label string, target int, duration time.Duration) *Counter {
	frames := float64(duration) / float64(FrameInterval)
	if frames < 1 {
		frames = 1
	}
	return &Counter{
		Label:     label,
		target:    float64(target),
		increment: float64(target) / frames,
	}
}

// Step advances the counter by one frame. It reports whether the counter is
// still running.
func (c *Counter) Step() bool {
	if c.current >= c.target {
		return false
	}
	c.current += c.increment
	if c.current > c.target {
		c.current = c.target
	}
	return c.current < c.target
}

// Value is the number to display.
func (c *Counter) Value() int { return int(math.Floor(c.current)) }

// done reports whether the counter reached its target.
func (c *Counter) done() bool { return c.current >= c.target }

// Group runs counters with a staggered start.
type Group struct {
	Counters []*Counter
	Stagger  time.Duration
	elapsed  time.Duration
}

// NewGroup returns a group with the default stagger.
func NewGroup(counters ...*Counter) *Group {
	return &Group{Counters: counters, Stagger: DefaultStagger}
}

// Update advances the group clock by dt and steps every counter whose start
// offset has passed.
func (g *Group) Update(dt time.Duration) {
	if dt > 0 {
		g.elapsed += dt
	}
	for i, c := range g.Counters {
		if g.elapsed < time.Duration(i)*g.Stagger {
			break
		}
		c.Step()
	}
}

// started reports how many counters have begun animating.
func (g *Group) started() int {
	n := 0
	for i := range g.Counters {
		if g.elapsed < time.Duration(i)*g.Stagger {
			break
		}
		n++
	}
	return n
}

// done reports whether every counter has finished.
func (g *Group) done() bool {
	for _, c := range g.Counters {
		if !c.done() {
			return false
		}
	}
	return true
}
