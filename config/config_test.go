package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Grid.AmountX != 70 || cfg.Grid.AmountY != 70 {
		t.Errorf("expected 70x70 grid, got %dx%d", cfg.Grid.AmountX, cfg.Grid.AmountY)
	}
	if cfg.Derived.NumPoints != 4900 {
		t.Errorf("expected 4900 points, got %d", cfg.Derived.NumPoints)
	}
	if cfg.Transient.MaxRipples != 60 {
		t.Errorf("expected max ripples 60, got %d", cfg.Transient.MaxRipples)
	}
	if cfg.Effects.FadeGrace != 2.5 {
		t.Errorf("expected fade grace 2.5, got %v", cfg.Effects.FadeGrace)
	}
	if cfg.Interaction.Debounce != 0.75 {
		t.Errorf("expected debounce 0.75, got %v", cfg.Interaction.Debounce)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	data := []byte("grid:\n  amount_x: 10\nnoise:\n  kernel: simplex\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Grid.AmountX != 10 {
		t.Errorf("expected overlay amount_x 10, got %d", cfg.Grid.AmountX)
	}
	// Keys absent from the overlay keep their defaults
	if cfg.Grid.AmountY != 70 {
		t.Errorf("expected default amount_y 70, got %d", cfg.Grid.AmountY)
	}
	if cfg.Noise.Kernel != "simplex" {
		t.Errorf("expected simplex kernel, got %q", cfg.Noise.Kernel)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("noise:\n  kernel: worley\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown noise kernel")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Separation = 42

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Grid.Separation != 42 {
		t.Errorf("expected separation 42, got %v", loaded.Grid.Separation)
	}
}
