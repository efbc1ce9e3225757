package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SlingshotFile is the config file name looked up in the search directories.
const SlingshotFile = "slingshot.yaml"

// LoadSlingshot loads the slingshot configuration.
// Search order: customPath -> ~/.slingshot/configs/slingshot.yaml ->
// ./configs/slingshot.yaml -> embedded default -> hardcoded default.
//
// Files are decoded on top of the hardcoded defaults, so a file may override
// only the keys it cares about.
func LoadSlingshot(customPath string) (SlingshotConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSlingshotConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseSlingshot(data)
		if err != nil {
			return DefaultSlingshotConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(SlingshotFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSlingshot(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", SlingshotFile)); err == nil {
		if cfg, err := ParseSlingshot(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSlingshot(defaultSlingshotYAML)
	if err != nil {
		return DefaultSlingshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSlingshot decodes YAML over the hardcoded defaults.
func ParseSlingshot(data []byte) (SlingshotConfig, error) {
	cfg := DefaultSlingshotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSlingshotConfig(), err
	}
	return cfg, nil
}

// ApplySlingshotPreset modifies the config based on a difficulty preset.
// Normal and empty presets leave the config untouched.
func ApplySlingshotPreset(cfg *SlingshotConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Physics.MaxPull *= 1.25
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Gameplay.HealthBonus++
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slingshot", "configs", filename)
}
