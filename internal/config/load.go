package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.yaml.in/yaml/v3"
)

// DataDir resolves gosh's per-user data directory: %APPDATA%\gosh on
// Windows, ~/.gosh elsewhere. History, directory-history and the
// default config.yaml all live here.
func DataDir() (string, error) {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA is not set")
		}
		return filepath.Join(appData, "gosh"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".gosh"), nil
}

func (cm *Manager) configFilePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads settings from <data-dir>/config.yaml, falling back to
// defaults if the file doesn't exist yet.
func (cm *Manager) Load() error {
	return cm.LoadWithFileOps(OSFileOps{})
}

// LoadWithFileOps loads configuration with custom file operations (for testing)
func (cm *Manager) LoadWithFileOps(fileOps FileOps) error {
	path, err := cm.configFilePath()
	if err != nil {
		return err
	}
	cm.configPath = path

	if _, err := fileOps.Stat(path); err != nil {
		return cm.config.Validate()
	}
	return cm.loadFromFileWithOps(path, fileOps)
}

// loadFromFileWithOps loads configuration from a specific file with custom file operations
func (cm *Manager) loadFromFileWithOps(path string, fileOps FileOps) error {
	data, err := fileOps.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	config := getDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	cm.config = config
	return cm.config.Validate()
}

// LoadOverlay loads a -i SCRIPT settings file and merges it over the
// already-loaded session settings, mirroring PyCmd's three-tier
// global/user/session override (the session script always wins last).
func (cm *Manager) LoadOverlay(path string) error {
	return cm.LoadOverlayWithFileOps(path, OSFileOps{})
}

// LoadOverlayWithFileOps is LoadOverlay with injectable file operations.
func (cm *Manager) LoadOverlayWithFileOps(path string, fileOps FileOps) error {
	data, err := fileOps.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read overlay settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cm.config); err != nil {
		return fmt.Errorf("failed to parse overlay settings file %s: %w", path, err)
	}
	return cm.config.Validate()
}

// LoadConfig loads the settings file and re-saves it, materializing
// defaults on first run.
func (cm *Manager) LoadConfig() error {
	if err := cm.Load(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cm.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
