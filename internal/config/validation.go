package config

import "strings"

func (c *Config) validateCompletionMode() error {
	mode := c.Behavior.CompletionMode
	if mode == "" || mode == "bash" {
		return nil
	}
	return &ValidationError{"behavior.completion_mode", mode, "only 'bash' is currently supported"}
}

func (c *Config) validatePrompt() error {
	p := c.Appearance.Prompt
	if p == "" || p == "abbrev_path" || p == "git_branch" {
		return nil
	}
	return &ValidationError{"appearance.prompt", p, "must be one of: abbrev_path, git_branch"}
}

// validateProfile validates the profile selection
func (c *Config) validateProfile() error {
	profile := c.Interactive.Profile
	if profile == "" {
		return nil
	}
	validProfiles := map[string]bool{"default": true, "emacs": true, "vi": true, "readline": true}
	if !validProfiles[profile] {
		return &ValidationError{"interactive.profile", profile, "must be one of: default, emacs, vi, readline"}
	}
	return nil
}

// validateContextKeybindings validates context-specific keybindings
func (c *Config) validateContextKeybindings() error {
	contexts := map[string]map[string]interface{}{
		"input":   c.Interactive.Contexts.Input.Keybindings,
		"results": c.Interactive.Contexts.Results.Keybindings,
		"search":  c.Interactive.Contexts.Search.Keybindings,
	}
	for contextName, bindings := range contexts {
		for action, value := range bindings {
			if err := validateKeybindingValue("interactive.contexts."+contextName+".keybindings."+action, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatePlatformKeybindings validates platform and terminal specific keybindings
func (c *Config) validatePlatformKeybindings() error {
	platforms := map[string]map[string]interface{}{
		"darwin":  c.Interactive.Darwin.Keybindings,
		"linux":   c.Interactive.Linux.Keybindings,
		"windows": c.Interactive.Windows.Keybindings,
	}
	for platformName, bindings := range platforms {
		for action, value := range bindings {
			if err := validateKeybindingValue("interactive."+platformName+".keybindings."+action, value); err != nil {
				return err
			}
		}
	}
	for termName, termConfig := range c.Interactive.Terminals {
		for action, value := range termConfig.Keybindings {
			if err := validateKeybindingValue("interactive.terminals."+termName+".keybindings."+action, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateKeybindings validates the global keybinding map plus the
// profile/context/platform overrides layered on top of it.
func (c *Config) validateKeybindings() error {
	if err := c.validateProfile(); err != nil {
		return err
	}
	for action, value := range c.Interactive.Keybindings {
		if err := validateKeybindingValue("interactive.keybindings."+action, value); err != nil {
			return err
		}
	}
	if err := c.validateContextKeybindings(); err != nil {
		return err
	}
	return c.validatePlatformKeybindings()
}

// validateKeybindingValue validates a keybinding value (string or array of strings)
func validateKeybindingValue(fieldPath string, value interface{}) error {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil
		}
		if err := parseKeyBinding(v); err != nil {
			return &ValidationError{fieldPath, v, err.Error()}
		}
	case []interface{}:
		for i, item := range v {
			itemStr, ok := item.(string)
			if !ok {
				return &ValidationError{fieldPath, item, "keybinding array items must be strings"}
			}
			if itemStr == "" {
				continue
			}
			if err := parseKeyBinding(itemStr); err != nil {
				return &ValidationError{fieldPath, itemStr, err.Error()}
			}
		}
	default:
		return &ValidationError{fieldPath, value, "keybinding must be a string or array of strings"}
	}
	return nil
}

// parseKeyBinding validates key binding strings in one of the accepted
// textual forms; the actual keystroke parsing lives in package
// keybindings, kept separate here to avoid a circular import.
func parseKeyBinding(keyStr string) error {
	s := strings.TrimSpace(keyStr)
	if s == "" {
		return &ValidationError{"", keyStr, "empty key binding"}
	}
	sLower := strings.ToLower(s)
	if (strings.HasPrefix(sLower, "ctrl+") && len(s) >= 6) ||
		(strings.HasPrefix(s, "^") && len(s) == 2) ||
		(strings.HasPrefix(sLower, "c-") && len(s) == 3) {
		return nil
	}
	return &ValidationError{"", keyStr, "unsupported key binding format (supported: 'ctrl+<key>', '^<key>', 'c-<key>')"}
}

// Validate checks all settings for consistency before Save/Set persist them.
func (c *Config) Validate() error {
	if err := c.validateCompletionMode(); err != nil {
		return err
	}
	if err := c.validatePrompt(); err != nil {
		return err
	}
	return c.validateKeybindings()
}
