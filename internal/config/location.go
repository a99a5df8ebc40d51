package config

import (
	"os"
	"path/filepath"
)

// ConfigEnvVar overrides the config file location.
const ConfigEnvVar = "BTE_CONFIG"

// GetConfigPath returns the configuration file path. It first checks the
// BTE_CONFIG environment variable, then falls back to the default location
// (~/.behavior-tree-engine/config).
func GetConfigPath() (string, error) {
	if configPath := os.Getenv(ConfigEnvVar); configPath != "" {
		return configPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".behavior-tree-engine", "config"), nil
}
