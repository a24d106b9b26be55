// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"fmt"
	"strings"
)

// WuxingConfig contains all configuration for the Wuxing Bubbles game.
type WuxingConfig struct {
	Board      WuxingBoard      `yaml:"board"`
	Shot       WuxingShot       `yaml:"shot"`
	Pressure   WuxingPressure   `yaml:"pressure"`
	Scoring    WuxingScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WuxingBoard defines the grid and its initial fill.
type WuxingBoard struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	SeedRows int     `yaml:"seed_rows"`
	SeedFill float64 `yaml:"seed_fill"` // Probability that a seeded cell holds a bubble
}

// WuxingShot defines projectile and aiming parameters.
type WuxingShot struct {
	Speed      float64 `yaml:"speed"` // World units per second
	MinAimDeg  float64 `yaml:"min_aim_deg"`
	MaxAimDeg  float64 `yaml:"max_aim_deg"`
	AimStepDeg float64 `yaml:"aim_step_deg"` // Rotation per aim key press
}

// WuxingPressure defines the periodic row push.
type WuxingPressure struct {
	IntervalMs int     `yaml:"interval_ms"`
	SpawnProb  float64 `yaml:"spawn_prob"`
}

// WuxingScoring defines points per shot outcome.
type WuxingScoring struct {
	Ke    int `yaml:"ke"`
	Sheng int `yaml:"sheng"`
	Stick int `yaml:"stick"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the pressure interval removed at max difficulty
	MinIntervalMs     int     `yaml:"min_interval_ms"`    // Floor for the pressure interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyFixed, DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset converts a name to a preset. The empty string selects
// DifficultyFixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyFixed, nil
	}
	p := DifficultyPreset(strings.ToLower(s))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
