package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultTuning()
	if err := yaml.Unmarshal(defaultTuningYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultTuning() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTuning())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ring:\n  count: 5\nflash:\n  period: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Ring.Count != 5 {
		t.Errorf("Ring.Count = %d, expected 5", cfg.Ring.Count)
	}
	if cfg.Flash.Period != 2 {
		t.Errorf("Flash.Period = %d, expected 2", cfg.Flash.Period)
	}
	if cfg.Ring.SizeRatio != 0.82 {
		t.Errorf("Ring.SizeRatio = %v, expected default 0.82", cfg.Ring.SizeRatio)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ring:\n  count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should reject ring.count 2")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		ok     bool
	}{
		{"defaults", func(*Tuning) {}, true},
		{"bad color", func(c *Tuning) { c.Mask.Fill = "rgb(1,2)" }, false},
		{"extent too large", func(c *Tuning) { c.Ring.ExtentRatio = 0.9 }, false},
		{"zoom range", func(c *Tuning) { c.Camera.MaxZoom = 0.5 }, false},
		{"friction", func(c *Tuning) { c.Player.Friction = 1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTuning()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultTuning().Difficulty

	tests := []struct {
		preset  DifficultyPreset
		lives   int
		steps   int
		timeout float64
	}{
		{DifficultyEasy, 3, 20, 60},
		{DifficultyNormal, 2, 17, 51},
		{DifficultyHard, 2, 13, 39},
	}

	for _, tc := range tests {
		d := NewDifficultyManager(cfg)
		d.SetLevel(InitialLevelForPreset(tc.preset))

		if got := d.Lives(3); got != tc.lives {
			t.Errorf("%s: Lives(3) = %d, expected %d", tc.preset, got, tc.lives)
		}
		if got := d.Steps(20); got != tc.steps {
			t.Errorf("%s: Steps(20) = %d, expected %d", tc.preset, got, tc.steps)
		}
		if got := d.Timeout(60); got < tc.timeout-1e-9 || got > tc.timeout+1e-9 {
			t.Errorf("%s: Timeout(60) = %v, expected %v", tc.preset, got, tc.timeout)
		}
	}
}

func TestDifficultyFloors(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		InitialLevel: 1,
		Scaling:      ScalingConfig{LivesReduction: 10, StepsReduction: 1},
	})

	if got := d.Lives(2); got != 1 {
		t.Errorf("Lives(2) = %d, expected floor of 1", got)
	}
	if got := d.Steps(5); got != 1 {
		t.Errorf("Steps(5) = %d, expected floor of 1", got)
	}
	if got := d.Timeout(0); got != 0 {
		t.Errorf("Timeout(0) = %v, expected 0 (no limit)", got)
	}
}
