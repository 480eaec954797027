package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 10 {
		t.Fatalf("default board = %dx%d, expected 12x10", cfg.Width, cfg.Height)
	}
	if cfg.TickInterval != 50*time.Millisecond {
		t.Fatalf("default interval = %v, expected 50ms", cfg.TickInterval)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 30, "height": 20, "tick_interval": 100000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Width != 30 || cfg.Height != 20 {
		t.Fatalf("board = %dx%d, expected 30x20", cfg.Width, cfg.Height)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Fatalf("interval = %v, expected 100ms", cfg.TickInterval)
	}
	// Untouched fields keep their defaults.
	if cfg.Scale != 32 {
		t.Fatalf("scale = %d, expected default 32", cfg.Scale)
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("missing file did not error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero interval", func(c *Config) { c.TickInterval = 0 }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"density above one", func(c *Config) { c.Density = 1.5 }},
		{"negative density", func(c *Config) { c.Density = -0.1 }},
	}
	for _, tc := range cases {
		cfg := NewConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s passed validation", tc.name)
		}
	}
}
