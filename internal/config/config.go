// Package config loads the scene settings: defaults, then an optional gcfg
// file, then UNISHARE_* environment variables.
package config

import (
	"fmt"
	"sort"

	"github.com/caarlos0/env/v11"
	"gopkg.in/gcfg.v1"
)

const (
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultTitle    = "Unishare"
	DefaultTPS      = 60
	DefaultCount    = 50
	DefaultDuration = 2000 // ms

	MaxTPS   = 240
	MaxCount = 10000
)

// Config is the full scene configuration.
type Config struct {
	Window    Window
	Particles Particles
	Stat      map[string]*Stat
}

// Window configures the host window and frame rate.
type Window struct {
	Width     int    `env:"UNISHARE_WINDOW_WIDTH"`
	Height    int    `env:"UNISHARE_WINDOW_HEIGHT"`
	Title     string `env:"UNISHARE_WINDOW_TITLE"`
	TPS       int    `env:"UNISHARE_WINDOW_TPS"`
	Resizable bool   `env:"UNISHARE_WINDOW_RESIZABLE"`
}

// Particles configures the particle field.
type Particles struct {
	Count int   `env:"UNISHARE_PARTICLES_COUNT"`
	Seed  int64 `env:"UNISHARE_PARTICLES_SEED"` // 0 seeds from the clock
	Glow  bool  `env:"UNISHARE_PARTICLES_GLOW"`
}

// Stat is one animated counter on the HUD.
type Stat struct {
	Target     int
	Order      int
	DurationMS int
}

// StatEntry is a named stat, as returned by Stats.
type StatEntry struct {
	Name string
	Stat
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: Window{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Title:     DefaultTitle,
			TPS:       DefaultTPS,
			Resizable: true,
		},
		Particles: Particles{
			Count: DefaultCount,
			Glow:  true,
		},
		Stat: defaultStats(),
	}
}

func defaultStats() map[string]*Stat {
	return map[string]*Stat{
		"Items Shared":    {Target: 1250, Order: 0, DurationMS: DefaultDuration},
		"Students Helped": {Target: 830, Order: 1, DurationMS: DefaultDuration},
		"Campus Partners": {Target: 24, Order: 2, DurationMS: DefaultDuration},
	}
}

// Load builds the configuration from defaults, the gcfg file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		cfg.Stat = nil
		if err := gcfg.ReadFileInto(cfg, path); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return finish(cfg)
}

// loadString is Load for an in-memory gcfg document.
func loadString(doc string) (*Config, error) {
	cfg := Default()
	cfg.Stat = nil
	if err := gcfg.ReadStringInto(cfg, doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finish(cfg)
}

func finish(cfg *Config) (*Config, error) {
	if cfg.Stat == nil {
		cfg.Stat = defaultStats()
	}
	for _, s := range cfg.Stat {
		if s.DurationMS == 0 {
			s.DurationMS = DefaultDuration
		}
	}
	if err := env.Parse(&cfg.Window); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := env.Parse(&cfg.Particles); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 1 || c.Window.TPS > MaxTPS {
		return fmt.Errorf("window tps must be in [1, %d], got %d", MaxTPS, c.Window.TPS)
	}
	if c.Particles.Count < 1 || c.Particles.Count > MaxCount {
		return fmt.Errorf("particle count must be in [1, %d], got %d", MaxCount, c.Particles.Count)
	}
	for name, s := range c.Stat {
		if s.Target < 0 {
			return fmt.Errorf("stat '%s' has negative target %d", name, s.Target)
		}
		if s.DurationMS < 0 {
			return fmt.Errorf("stat '%s' has negative duration %d", name, s.DurationMS)
		}
	}
	return nil
}

// Stats returns the stats sorted by Order, then name.
func (c *Config) Stats() []StatEntry {
	out := make([]StatEntry, 0, len(c.Stat))
	for name, s := range c.Stat {
		out = append(out, StatEntry{Name: name, Stat: *s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].Name < out[j].Name
	})
	return out
}
