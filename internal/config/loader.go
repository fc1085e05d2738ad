package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const paperPlaneFile = "paperplane.yaml"

// LoadPaperPlane loads Paper Plane configuration.
// Search order: customPath -> ~/.paperplane/configs/paperplane.yaml -> ./configs/paperplane.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadPaperPlane(customPath string) (PaperPlaneConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPaperPlaneConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePaperPlane(data)
		if err != nil {
			return DefaultPaperPlaneConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(paperPlaneFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePaperPlane(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", paperPlaneFile)); err == nil {
		if cfg, err := parsePaperPlane(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePaperPlane(defaultPaperPlaneYAML)
	if err != nil {
		return DefaultPaperPlaneConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePaperPlane decodes YAML over the hardcoded defaults and validates the result.
func parsePaperPlane(data []byte) (PaperPlaneConfig, error) {
	cfg := DefaultPaperPlaneConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".paperplane", "configs", filename)
}

// ApplyPaperPlanePreset modifies the config based on a difficulty preset.
// The fixed preset keeps whatever target scale the config file set.
func ApplyPaperPlanePreset(cfg *PaperPlaneConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyFixed {
		return
	}
	cfg.Target.Scale = TargetScaleForPreset(preset)

	// Harder presets also make release gestures more sensitive
	switch preset {
	case DifficultyEasy:
		cfg.Interaction.ReleaseGain = 0.8
	case DifficultyNormal:
		cfg.Interaction.ReleaseGain = 1.0
	case DifficultyHard:
		cfg.Interaction.ReleaseGain = 1.25
	}
}
