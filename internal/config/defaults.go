package config

import (
	_ "embed"
)

//go:embed defaults/wuxing.yaml
var defaultWuxingYAML []byte

// DefaultWuxingYAML returns the embedded default configuration file.
func DefaultWuxingYAML() []byte {
	return append([]byte(nil), defaultWuxingYAML...)
}

// DefaultWuxingConfig returns the default Wuxing Bubbles configuration.
func DefaultWuxingConfig() WuxingConfig {
	return WuxingConfig{
		Board: WuxingBoard{
			Rows:     12,
			Cols:     9,
			SeedRows: 4,
			SeedFill: 0.85,
		},
		Shot: WuxingShot{
			Speed:      900,
			MinAimDeg:  -160,
			MaxAimDeg:  -20,
			AimStepDeg: 3,
		},
		Pressure: WuxingPressure{
			IntervalMs: 9000,
			SpawnProb:  0.8,
		},
		Scoring: WuxingScoring{
			Ke:    10,
			Sheng: 3,
			Stick: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 400,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.6,
				MinIntervalMs:     3000,
			},
		},
	}
}
