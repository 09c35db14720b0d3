package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// DefaultInstallFile is the answers file read by headless setup.
const DefaultInstallFile = "installconf.yaml"

// LoadInstallFile reads the answers for a non-interactive setup. It has the
// same keys as config.yaml; missing keys stay at their zero value.
func LoadInstallFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading install config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing install config %s: %w", path, err)
	}
	return &cfg, nil
}
