// Package config provides YAML-based tuning loading and difficulty
// presets for hexring.
package config

import (
	"fmt"

	"github.com/vovakirdan/hexring/internal/core"
)

// Tuning contains every knob that is not part of a level schema.
type Tuning struct {
	Player     PlayerTuning     `yaml:"player"`
	Camera     CameraTuning     `yaml:"camera"`
	Ring       RingTuning       `yaml:"ring"`
	Mask       MaskTuning       `yaml:"mask"`
	Flash      FlashTuning      `yaml:"flash"`
	Scoring    ScoringTuning    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerTuning defines the player's movement and look.
type PlayerTuning struct {
	Size        float64 `yaml:"size"`
	Speed       float64 `yaml:"speed"`      // world units per frame
	TurnSpeed   float64 `yaml:"turn_speed"` // degrees per frame
	Friction    float64 `yaml:"friction"`
	Fill        string  `yaml:"fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`
}

// CameraTuning defines the view.
type CameraTuning struct {
	Zoom      float64 `yaml:"zoom"`
	MinZoom   float64 `yaml:"min_zoom"`
	MaxZoom   float64 `yaml:"max_zoom"`
	ZoomSpeed float64 `yaml:"zoom_speed"`
	Friction  float64 `yaml:"friction"`
	Yoked     bool    `yaml:"yoked"`
}

// RingTuning sizes the ring relative to half the surface.
type RingTuning struct {
	SizeRatio   float64 `yaml:"size_ratio"`
	ExtentRatio float64 `yaml:"extent_ratio"`
	Count       int     `yaml:"count"`
	Offset      float64 `yaml:"offset"` // degrees
	Fill        string  `yaml:"fill"`
}

// MaskTuning sizes the viewport relative to half the surface.
type MaskTuning struct {
	SizeRatio float64 `yaml:"size_ratio"`
	Fill      string  `yaml:"fill"`
}

// FlashTuning times the ring flash in frames.
type FlashTuning struct {
	Period int `yaml:"period"`
	Cycles int `yaml:"cycles"`
}

// ScoringTuning defines the end-of-game bonus.
type ScoringTuning struct {
	WinBonus int `yaml:"win_bonus"`
}

// Validate checks ranges and color strings.
func (t Tuning) Validate() error {
	colors := map[string]string{
		"player.fill":   t.Player.Fill,
		"player.stroke": t.Player.Stroke,
		"ring.fill":     t.Ring.Fill,
		"mask.fill":     t.Mask.Fill,
	}
	for field, s := range colors {
		if _, err := core.ParseColor(s); err != nil {
			return fmt.Errorf("config: %s: %w", field, err)
		}
	}

	switch {
	case t.Ring.Count < 3:
		return fmt.Errorf("config: ring.count must be at least 3, got %d", t.Ring.Count)
	case t.Ring.SizeRatio <= 0 || t.Ring.SizeRatio > 1:
		return fmt.Errorf("config: ring.size_ratio must be in (0, 1], got %v", t.Ring.SizeRatio)
	case t.Ring.ExtentRatio <= 0 || t.Ring.ExtentRatio >= t.Ring.SizeRatio:
		return fmt.Errorf("config: ring.extent_ratio must be in (0, size_ratio), got %v", t.Ring.ExtentRatio)
	case t.Mask.SizeRatio <= 0:
		return fmt.Errorf("config: mask.size_ratio must be positive, got %v", t.Mask.SizeRatio)
	case t.Camera.MinZoom <= 0 || t.Camera.MaxZoom < t.Camera.MinZoom:
		return fmt.Errorf("config: camera zoom range [%v, %v] is invalid", t.Camera.MinZoom, t.Camera.MaxZoom)
	case t.Player.Friction < 0 || t.Player.Friction >= 1:
		return fmt.Errorf("config: player.friction must be in [0, 1), got %v", t.Player.Friction)
	}
	return nil
}
