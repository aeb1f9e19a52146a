package types

import (
	"errors"
	"testing"
)

func TestCellSize(t *testing.T) {
	g := NewGrid(500, 500, 20)
	if got := g.CellSize(); got != 25 {
		t.Fatalf("cell size = %v, want 25", got)
	}
	if c := g.Center(); !c.Equals(Vec(250, 250)) {
		t.Errorf("center = %+v, want (250,250)", c)
	}
}

func TestWrap(t *testing.T) {
	g := NewGrid(500, 500, 20)

	tests := []struct {
		name string
		in   Vector2
		want Vector2
	}{
		{"right edge", Vec(500, 100), Vec(0, 100)},
		{"past right edge", Vec(525, 100), Vec(0, 100)},
		{"bottom edge", Vec(100, 500), Vec(100, 0)},
		{"left of zero", Vec(-25, 100), Vec(475, 100)},
		{"above zero", Vec(100, -25), Vec(100, 475)},
		{"corner", Vec(-25, 500), Vec(475, 0)},
		{"inside", Vec(250, 250), Vec(250, 250)},
		{"origin", Vec(0, 0), Vec(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.in
			g.Wrap(&p)
			if !p.Equals(tt.want) {
				t.Errorf("Wrap(%+v) = %+v, want %+v", tt.in, p, tt.want)
			}
			// A second pass must not move an already wrapped point
			g.Wrap(&p)
			if !p.Equals(tt.want) {
				t.Errorf("second Wrap moved point to %+v", p)
			}
		})
	}
}

func TestWrappedDistance(t *testing.T) {
	g := NewGrid(500, 500, 20)
	if d := g.WrappedDistance(Vec(0, 0), Vec(475, 0)); d != 1 {
		t.Errorf("distance across the edge = %d, want 1", d)
	}
	if d := g.WrappedDistance(Vec(0, 0), Vec(50, 75)); d != 5 {
		t.Errorf("distance = %d, want 5", d)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	bad := []func(*Config){
		func(c *Config) { c.Cells = 1 },
		func(c *Config) { c.ArenaHeight = 400 },
		func(c *Config) { c.Cells = 30 },
		func(c *Config) { c.MoveDelay = 0 },
		func(c *Config) { c.BurstSize = -1 },
		func(c *Config) { c.SpawnRetries = 0 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: expected ErrInvalidConfig, got %v", i, err)
		}
	}
}
