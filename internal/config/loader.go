package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const lightsFile = "lights.yaml"

// LoadLights loads the game configuration.
// Search order: customPath -> ~/.lights/configs/lights.yaml -> ./configs/lights.yaml -> embedded default.
// Only a broken customPath is an error; other broken files are skipped.
func LoadLights(customPath string) (LightsConfig, error) {
	if customPath != "" {
		cfg, err := readLights(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range searchPaths(lightsFile) {
		if cfg, err := readLights(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseLights(defaultLightsYAML)
	if err != nil {
		return DefaultLightsConfig(), nil
	}
	return cfg, nil
}

func readLights(path string) (LightsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LightsConfig{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	cfg, err := parseLights(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parseLights decodes data over the built-in defaults and validates it.
// A file that lists its own levels without default_level starts on the first one.
func parseLights(data []byte) (LightsConfig, error) {
	defaults := DefaultLightsConfig()
	cfg := defaults
	cfg.Levels = nil
	cfg.DefaultLevel = ""
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse yaml: %w", err)
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = defaults.Levels
		if cfg.DefaultLevel == "" {
			cfg.DefaultLevel = defaults.DefaultLevel
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lights", "configs", filename)
}

// ErrConfigExists is returned by WriteDefault when the target file exists and force is false.
var ErrConfigExists = errors.New("config: file already exists")

// UserConfigPath returns ~/.lights/configs/lights.yaml, the first file LoadLights looks at.
func UserConfigPath() string {
	return userConfigPath(lightsFile)
}

// WriteDefault writes the built-in lights.yaml to path, creating parent directories.
func WriteDefault(path string, force bool) error {
	if path == "" {
		return errors.New("config: no path to write")
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultLightsYAML, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
