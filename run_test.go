package droste

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
}

func TestConfigBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.MarginX, cfg.MarginY = 100, 50
	got, err := cfg.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	if got != (Rect{100, 50, 600, 500}) {
		t.Errorf("Bounds = %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidConfig},
		{"margins eat screen", func(c *Config) { c.MarginX = 400 }, ErrDegenerateBounds},
		{"walker lifetime", func(c *Config) { c.WalkerMarker.Lifetime = 0 }, ErrInvalidConfig},
		{"path period", func(c *Config) { c.Path.Period = -1 }, ErrInvalidConfig},
		{"droste scale", func(c *Config) { c.Droste.Scale = 2 }, ErrInvalidConfig},
		{"painter radius", func(c *Config) { c.Painter.Style.Radius = 0 }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.target) {
				t.Errorf("Validate = %v, want %v", err, tt.target)
			}
		})
	}
}

func TestNewPointerSelection(t *testing.T) {
	cfg := DefaultConfig()
	p, err := NewPointer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(EbitenPointer); !ok {
		t.Errorf("default pointer = %T, want EbitenPointer", p)
	}

	cfg.Attract = true
	p, err = NewPointer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sp, ok := p.(*ScriptedPointer)
	if !ok || sp.Pending() == 0 {
		t.Errorf("attract pointer = %T with no events", p)
	}
}

func TestNewPointerFromScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	data := []byte(`{"steps": [{"action": "press", "x": 1, "y": 2}]}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.Attract = true
	cfg.PointerScript = path
	p, err := NewPointer(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sp := p.(*ScriptedPointer); sp.Pending() != 1 {
		t.Errorf("Pending = %d, want 1 (script wins over attract)", sp.Pending())
	}

	cfg.PointerScript = filepath.Join(t.TempDir(), "missing.json")
	if _, err := NewPointer(cfg); err == nil {
		t.Error("expected error for missing script")
	}
}
