package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWuxing loads Wuxing Bubbles configuration.
// Search order: customPath -> ~/.arcade/configs/wuxing.yaml -> ./configs/wuxing.yaml -> embedded default.
// Files are applied over the defaults, so a partial file only overrides the
// keys it names.
func LoadWuxing(customPath string) (WuxingConfig, error) {
	cfg := DefaultWuxingConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("wuxing.yaml"),
		filepath.Join("configs", "wuxing.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// Each candidate is decoded over fresh defaults.
		fileCfg := DefaultWuxingConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	if err := yaml.Unmarshal(defaultWuxingYAML, &cfg); err != nil {
		return DefaultWuxingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyWuxingPreset modifies the config based on a difficulty preset.
func ApplyWuxingPreset(cfg *WuxingConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.SeedRows = 3
		cfg.Pressure.IntervalMs = 12000
		cfg.Pressure.SpawnProb = 0.7
	case DifficultyHard:
		cfg.Board.SeedRows = 5
		cfg.Pressure.IntervalMs = 7000
		cfg.Pressure.SpawnProb = 0.9
	}
}
