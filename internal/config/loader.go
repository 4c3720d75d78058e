package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "agent8.yaml"

// LoadAgent8 loads the Agent8 configuration.
// Search order: customPath -> ~/.agent8/configs/agent8.yaml -> ./configs/agent8.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadAgent8(customPath string) (Agent8Config, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", ConfigFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultAgent8Config()
	if err := yaml.Unmarshal(defaultAgent8YAML, &cfg); err != nil {
		return DefaultAgent8Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads one config file on top of the defaults. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadFile(path string) (Agent8Config, error) {
	cfg := DefaultAgent8Config()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Agent8Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".agent8", "configs", filename)
}

// ApplyAgent8Preset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyAgent8Preset(cfg *Agent8Config, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == ProgressNone {
			cfg.Difficulty.Progression.Type = ProgressScore
		}
	}
}
