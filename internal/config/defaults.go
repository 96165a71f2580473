package config

import (
	_ "embed"
)

//go:embed defaults/hexring.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hardcoded tuning.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Size:        1.5,
			Speed:       0.25,
			TurnSpeed:   8,
			Friction:    0.9,
			Fill:        "rgb(75,75,75)",
			Stroke:      "white",
			StrokeWidth: 0.35,
		},
		Camera: CameraTuning{
			Zoom:      3,
			MinZoom:   1,
			MaxZoom:   8,
			ZoomSpeed: 0.02,
			Friction:  0.9,
			Yoked:     true,
		},
		Ring: RingTuning{
			SizeRatio:   0.82,
			ExtentRatio: 0.1,
			Count:       8,
			Offset:      3,
			Fill:        "rgb(120,120,120)",
		},
		Mask: MaskTuning{
			SizeRatio: 0.8,
			Fill:      "rgb(90,90,90)",
		},
		Flash: FlashTuning{
			Period: 4,
			Cycles: 2,
		},
		Scoring: ScoringTuning{
			WinBonus: 1000,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: InitialLevelForPreset(DifficultyNormal),
			Scaling: ScalingConfig{
				LivesReduction:   2,
				StepsReduction:   0.5,
				TimeoutReduction: 0.5,
			},
		},
	}
}
