package config

import (
	"fmt"
	"os"
	"path/filepath"

	"formkit/pkg/types"

	"gopkg.in/yaml.v3"
)

// Config represents the formkit defaults file. It carries the texts and
// window options the dialog entry points fall back to when a caller
// leaves them empty.
type Config struct {
	Dialogs struct {
		DismissText string `yaml:"dismiss_text"` // Notify dialog button text
		ConfirmText string `yaml:"confirm_text"` // Prompt/confirm accept button text
		DeclineText string `yaml:"decline_text"` // Confirm dialog deny button text
	} `yaml:"dialogs"`
	Window struct {
		State         string `yaml:"state"`           // normal, maximized or minimized
		StartPosition string `yaml:"start_position"`  // center-screen, manual, os-default-location, os-default-bounds, center-parent
		HideInTaskbar bool   `yaml:"hide_in_taskbar"` // Public hide semantics; inverted at the factory boundary
	} `yaml:"window"`
	Settings struct {
		Debug bool `yaml:"debug"` // Enable debug logging
	} `yaml:"settings"`
}

var windowStates = map[string]types.WindowState{
	"normal":    types.StateNormal,
	"maximized": types.StateMaximized,
	"minimized": types.StateMinimized,
}

var startPositions = map[string]types.StartPosition{
	"center-screen":       types.CenterScreen,
	"manual":              types.ManualPosition,
	"os-default-location": types.OSDefaultLocation,
	"os-default-bounds":   types.OSDefaultBounds,
	"center-parent":       types.CenterParent,
}

// LoadConfig loads configuration from the default location
// (~/.config/formkit/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "formkit", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if tempCfg.Dialogs.DismissText != "" {
		cfg.Dialogs.DismissText = tempCfg.Dialogs.DismissText
	}
	if tempCfg.Dialogs.ConfirmText != "" {
		cfg.Dialogs.ConfirmText = tempCfg.Dialogs.ConfirmText
	}
	if tempCfg.Dialogs.DeclineText != "" {
		cfg.Dialogs.DeclineText = tempCfg.Dialogs.DeclineText
	}
	if tempCfg.Window.State != "" {
		cfg.Window.State = tempCfg.Window.State
	}
	if tempCfg.Window.StartPosition != "" {
		cfg.Window.StartPosition = tempCfg.Window.StartPosition
	}
	cfg.Window.HideInTaskbar = tempCfg.Window.HideInTaskbar
	cfg.Settings.Debug = tempCfg.Settings.Debug

	// Validate the final configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Dialogs.DismissText = "OK"
	cfg.Dialogs.ConfirmText = "OK"
	cfg.Dialogs.DeclineText = "Cancel"

	cfg.Window.State = "normal"
	cfg.Window.StartPosition = "center-screen"
	cfg.Window.HideInTaskbar = false

	cfg.Settings.Debug = false

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	if _, ok := windowStates[c.Window.State]; !ok {
		return fmt.Errorf("invalid window state: %s", c.Window.State)
	}

	if _, ok := startPositions[c.Window.StartPosition]; !ok {
		return fmt.Errorf("invalid start position: %s", c.Window.StartPosition)
	}

	if c.Dialogs.DismissText == "" || c.Dialogs.ConfirmText == "" || c.Dialogs.DeclineText == "" {
		return fmt.Errorf("dialog button texts must not be empty")
	}

	return nil
}

// WindowOptions converts the stored window settings into the options
// bundle the dialog entry points accept. The configuration must have been
// validated first.
func (c *Config) WindowOptions() types.WindowOptions {
	return types.WindowOptions{
		State:         windowStates[c.Window.State],
		StartPosition: startPositions[c.Window.StartPosition],
		HideInTaskbar: c.Window.HideInTaskbar,
	}
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Dialogs.DismissText = "Dismiss"
	cfg.Dialogs.ConfirmText = "Accept"
	cfg.Dialogs.DeclineText = "Reject"
	cfg.Window.HideInTaskbar = true
	return cfg
}
