package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gliderFile = "glider.yaml"

// LoadGlider loads the paraglider configuration.
// Search order: customPath -> ~/.arcade/configs/glider.yaml -> ./configs/glider.yaml -> embedded default
// Files are applied on top of the defaults, so a file may set only the keys
// it cares about.
func LoadGlider(customPath string) (GliderConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(gliderFile), filepath.Join("configs", gliderFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultGliderConfig()
	if err := yaml.Unmarshal(defaultGliderYAML, &cfg); err != nil {
		return DefaultGliderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the file LoadGlider would read for customPath, or ""
// when the embedded default would be used.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, path := range []string{userConfigPath(gliderFile), filepath.Join("configs", gliderFile)} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadFile reads path and decodes it over the defaults.
func loadFile(path string) (GliderConfig, error) {
	cfg := DefaultGliderConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
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
