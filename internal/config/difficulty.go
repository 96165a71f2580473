package config

import (
	"fmt"
	"math"
)

// DifficultyConfig scales a schema's gameplay limits.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	LivesReduction   int     `yaml:"lives_reduction"`   // Lives removed at max difficulty
	StepsReduction   float64 `yaml:"steps_reduction"`   // Fraction of steps removed at max difficulty
	TimeoutReduction float64 `yaml:"timeout_reduction"` // Fraction of the timeout removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset sets the difficulty level from a preset.
func ApplyPreset(t *Tuning, preset DifficultyPreset) {
	t.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// DifficultyManager derives gameplay limits from the difficulty level.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		level: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetLevel(level float64) {
	d.level = clampF(level, 0.0, 1.0)
}

// Level returns the difficulty level.
func (d *DifficultyManager) Level() float64 {
	return d.level
}

// Lives returns base reduced by the difficulty, never below one.
func (d *DifficultyManager) Lives(base int) int {
	reduction := int(math.Round(d.level * float64(d.cfg.Scaling.LivesReduction)))
	return max(base-reduction, 1)
}

// Steps returns base reduced by the difficulty, never below one.
func (d *DifficultyManager) Steps(base int) int {
	scaled := float64(base) * (1 - d.level*d.cfg.Scaling.StepsReduction)
	return max(int(math.Round(scaled)), 1)
}

// Timeout returns base seconds reduced by the difficulty. Zero stays zero
// (no time limit).
func (d *DifficultyManager) Timeout(base float64) float64 {
	if base <= 0 {
		return 0
	}
	return base * (1 - d.level*d.cfg.Scaling.TimeoutReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
