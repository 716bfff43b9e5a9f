// Package config loads and persists gosh's settings file, the YAML
// equivalent of PyCmd's init.py appearance.*/behavior.* namespace.
package config

import "regexp"

var configPathSegmentRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Config represents the complete settings structure, written to and
// read from <data-dir>/config.yaml, and optionally overlaid by a
// -i SCRIPT file at session start.
type Config struct {
	Meta struct {
		ConfigVersion string `yaml:"config-version"`
	} `yaml:"meta"`

	Behavior struct {
		DelayedExpansion bool   `yaml:"delayed_expansion"`
		QuietMode        bool   `yaml:"quiet_mode"`
		CompletionMode   string `yaml:"completion_mode"`
		ConfirmHistZap   bool   `yaml:"confirm_hist_zap"`
	} `yaml:"behavior"`

	Appearance struct {
		// Prompt selects "abbrev_path" (default) or "git_branch".
		Prompt string `yaml:"prompt"`

		Colors struct {
			Prompt     string `yaml:"prompt"`
			Completion string `yaml:"completion"`
			Selection  string `yaml:"selection"`
			Error      string `yaml:"error"`
		} `yaml:"colors"`
	} `yaml:"appearance"`

	Interactive struct {
		Profile string `yaml:"profile,omitempty"`

		Keybindings map[string]interface{} `yaml:"keybindings,omitempty"`

		Contexts struct {
			Input   KeybindingsConfig `yaml:"input,omitempty"`
			Results KeybindingsConfig `yaml:"results,omitempty"`
			Search  KeybindingsConfig `yaml:"search,omitempty"`
		} `yaml:"contexts,omitempty"`

		Darwin  KeybindingsConfig `yaml:"darwin,omitempty"`
		Linux   KeybindingsConfig `yaml:"linux,omitempty"`
		Windows KeybindingsConfig `yaml:"windows,omitempty"`

		Terminals map[string]KeybindingsConfig `yaml:"terminals,omitempty"`
	} `yaml:"interactive"`
}

// Manager handles configuration loading, saving, and dot-path access.
type Manager struct {
	config     *Config
	configPath string
}

// NewConfigManager creates a new configuration manager with defaults.
func NewConfigManager() *Manager {
	return &Manager{config: getDefaultConfig()}
}

// GetConfig returns the current configuration.
func (cm *Manager) GetConfig() *Config {
	return cm.config
}

// getDefaultConfig mirrors the defaults example-init.py documents for
// appearance.prompt / behavior.quiet_mode / behavior.completion_mode.
func getDefaultConfig() *Config {
	config := &Config{}
	config.Meta.ConfigVersion = "1.0"
	config.Behavior.DelayedExpansion = false
	config.Behavior.QuietMode = false
	config.Behavior.CompletionMode = "bash"
	config.Behavior.ConfirmHistZap = true
	config.Appearance.Prompt = "abbrev_path"
	config.Appearance.Colors.Prompt = "bright"
	config.Appearance.Colors.Completion = "blue"
	config.Appearance.Colors.Selection = "toggle_blue"
	config.Appearance.Colors.Error = "red"
	return config
}
