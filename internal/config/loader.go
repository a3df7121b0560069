package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRecycling loads the recycling game configuration.
// Search order: customPath -> ~/.recycle/configs/recycling.yaml -> ./configs/recycling.yaml -> embedded default.
// Files are decoded on top of the defaults so they only need the keys they change.
func LoadRecycling(customPath string) (RecyclingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RecyclingConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RecyclingConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("recycling.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "recycling.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRecyclingYAML)
	if err != nil {
		return DefaultRecyclingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the hardcoded defaults and normalizes the result.
// It does not validate; call Validate before use.
func Parse(data []byte) (RecyclingConfig, error) {
	cfg := DefaultRecyclingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RecyclingConfig{}, err
	}
	return cfg.Normalized(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".recycle", "configs", filename)
}

// ApplyRecyclingPreset modifies the config based on a difficulty preset.
func ApplyRecyclingPreset(cfg *RecyclingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Can.Width *= 1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.ScorePerLevel += 3
	}
}
