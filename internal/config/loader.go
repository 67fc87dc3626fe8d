package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// Load loads the bomber configuration.
// Search order: customPath -> ~/.bomber/configs/bomber.yaml -> ./configs/bomber.yaml -> embedded default
// Files only need the keys they change; everything else keeps its default.
func Load(customPath string) (BomberConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BomberConfig{}, SourceCustom, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return BomberConfig{}, SourceCustom, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BomberConfig{}, SourceCustom, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if path := userConfigPath("bomber.yaml"); path != "" {
		if cfg, ok := tryFile(path); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", "bomber.yaml")); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultBomberYAML); err == nil && cfg.Validate() == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultBomberConfig(), SourceBuiltin, nil
}

// tryFile loads an optional config file. Missing or broken files are skipped.
func tryFile(path string) (BomberConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BomberConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return BomberConfig{}, false
	}
	return cfg, true
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (BomberConfig, error) {
	cfg := DefaultBomberConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BomberConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg BomberConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomber", "configs", filename)
}
