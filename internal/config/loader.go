package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDuckHunt loads the Duck Hunt configuration.
// Search order: customPath -> ~/.duckhunt/configs/duckhunt.yaml ->
// ./configs/duckhunt.yaml -> embedded default.
// Whatever source wins is validated before it is returned; a malformed
// config is an error here, never mid-game.
func LoadDuckHunt(customPath string) (DuckHuntConfig, error) {
	var cfg DuckHuntConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("duckhunt.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				if err := cfg.Validate(); err != nil {
					return cfg, err
				}
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "duckhunt.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			if err := cfg.Validate(); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDuckHuntYAML, &cfg); err != nil {
		return DefaultDuckHuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duckhunt", "configs", filename)
}
