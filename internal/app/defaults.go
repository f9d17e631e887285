package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment
// variables first. Environment variables:
//   - COMMTOOL_CONFIG_PATH: config file location (default: ~/.config/commtool.toml)
//   - COMMTOOL_HOME: data root for commission storage (default: ~/Documents/CommTool)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	dataRoot, err := getDataRoot()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"data_root":   dataRoot,
		"log_dir":     filepath.Join(dataRoot, "log"),
	}, nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv("COMMTOOL_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "commtool.toml"), nil
}

// getDataRoot returns the storage root, which lives in the user's
// Documents folder so the data is visible next to their other work.
func getDataRoot() (string, error) {
	if path := os.Getenv("COMMTOOL_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, "Documents", "CommTool"), nil
}
