package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/orbitdemo.yaml
var defaultYAML []byte

const (
	userDirName   = ".orbitdemo"
	userFileName  = "config.yaml"
	localFilePath = "configs/orbitdemo.yaml"
)

// Load finds and parses the configuration.
// Search order: customPath -> ~/.orbitdemo/config.yaml -> ./configs/orbitdemo.yaml -> embedded default.
// source is the file that was used, empty for the embedded default.
func Load(customPath string) (cfg *Config, source string, err error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return nil, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(), localFilePath} {
		if path == "" {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	cfg, err = Parse(defaultYAML)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return cfg, "", nil
}

// LoadFile reads and parses one configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse applies YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// DefaultYAML returns the embedded default file, comments included.
func DefaultYAML() []byte {
	return defaultYAML
}

// userConfigPath returns the per-user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDirName, userFileName)
}
