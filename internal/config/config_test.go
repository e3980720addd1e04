package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[window]
width = 800
height = 600
title = "Particle Background"
tps = 30

[particles]
count = 120
seed = 42
glow = false

[stat "Donations"]
target = 500
order = 1

[stat "Volunteers"]
target = 75
order = 0
durationms = 1000
`

func TestDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, cfg.Window.Width)
	assert.Equal(t, DefaultHeight, cfg.Window.Height)
	assert.Equal(t, DefaultTPS, cfg.Window.TPS)
	assert.True(t, cfg.Window.Resizable)
	assert.Equal(t, 50, cfg.Particles.Count)
	assert.Zero(t, cfg.Particles.Seed)
	assert.True(t, cfg.Particles.Glow)
	assert.Len(t, cfg.Stat, 3)
}

func TestLoadString(t *testing.T) {
	cfg, err := loadString(sample)
	require.NoError(t, err)

	assert.Equal(t, Window{Width: 800, Height: 600, Title: "Particle Background", TPS: 30, Resizable: true}, cfg.Window)
	assert.Equal(t, Particles{Count: 120, Seed: 42, Glow: false}, cfg.Particles)

	stats := cfg.Stats()
	require.Len(t, stats, 2, "file stats replace the defaults")
	assert.Equal(t, "Volunteers", stats[0].Name)
	assert.Equal(t, 75, stats[0].Target)
	assert.Equal(t, 1000, stats[0].DurationMS)
	assert.Equal(t, "Donations", stats[1].Name)
	assert.Equal(t, DefaultDuration, stats[1].DurationMS)
}

func TestLoadStringKeepsDefaultStats(t *testing.T) {
	cfg, err := loadString("[particles]\ncount = 10\n")
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Particles.Count)
	assert.Len(t, cfg.Stat, 3)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.gcfg")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, int64(42), cfg.Particles.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gcfg"))
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("UNISHARE_WINDOW_WIDTH", "1920")
	t.Setenv("UNISHARE_PARTICLES_SEED", "7")
	t.Setenv("UNISHARE_PARTICLES_GLOW", "true")

	cfg, err := loadString(sample)
	require.NoError(t, err)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height, "unset variables keep file values")
	assert.Equal(t, int64(7), cfg.Particles.Seed)
	assert.True(t, cfg.Particles.Glow)
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("UNISHARE_PARTICLES_COUNT", "lots")
	_, err := Load("")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown variable", "[window]\ncolour = red\n"},
		{"unknown section", "[audio]\nvolume = 3\n"},
		{"not a number", "[window]\nwidth = wide\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadString(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, false},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }, false},
		{"tps too high", func(c *Config) { c.Window.TPS = MaxTPS + 1 }, false},
		{"no particles", func(c *Config) { c.Particles.Count = 0 }, false},
		{"too many particles", func(c *Config) { c.Particles.Count = MaxCount + 1 }, false},
		{"negative target", func(c *Config) { c.Stat["x"] = &Stat{Target: -1} }, false},
		{"negative duration", func(c *Config) { c.Stat["x"] = &Stat{DurationMS: -5} }, false},
		{"no stats", func(c *Config) { c.Stat = map[string]*Stat{} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStatsOrder(t *testing.T) {
	cfg := Default()
	cfg.Stat = map[string]*Stat{
		"b": {Order: 1},
		"a": {Order: 1},
		"z": {Order: 0},
	}
	var names []string
	for _, s := range cfg.Stats() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"z", "a", "b"}, names)
}

func TestExampleSceneLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "scene.example.gcfg"))
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Particles.Count)
	assert.Equal(t, "Items Shared", cfg.Stats()[0].Name)
	assert.Equal(t, 1500, cfg.Stat["Campus Partners"].DurationMS)
}
