// Package config provides configuration management for the tray application.
// It handles loading and validating application settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yllada/trayapp/common"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// The file is read-only from the application's point of view; a missing file
// means defaults.
type Config struct {
	// ShowOnStart opens the window right after the tray is installed.
	ShowOnStart bool `yaml:"show_on_start"`
	// HideOnClose hides the window into the tray instead of destroying it.
	HideOnClose bool `yaml:"hide_on_close"`
	// NotifyOnHide shows a desktop notification the first time the window
	// is hidden into the tray.
	NotifyOnHide bool `yaml:"notify_on_hide"`
	// Theme sets the color theme: "light", "dark", or "auto".
	Theme string `yaml:"theme"`
	// LogToFile enables the rotated log file.
	LogToFile bool `yaml:"log_to_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowOnStart:  true,
		HideOnClose:  true,
		NotifyOnHide: true,
		Theme:        common.ThemeAuto,
		LogToFile:    true,
	}
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from path. If the file doesn't exist,
// the default configuration is returned.
func LoadFrom(path string) (*Config, error) {
	if !common.FileExists(path) {
		return DefaultConfig(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening configuration: %w", common.ErrConfigLoad, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true) // Strict validation: reject unknown fields

	// Fields absent from the file keep their defaults.
	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: error parsing configuration: %w", common.ErrConfigLoad, err)
	}

	config.validate()
	return config, nil
}

// validate normalizes out-of-range values.
func (c *Config) validate() {
	switch c.Theme {
	case common.ThemeAuto, common.ThemeLight, common.ThemeDark:
	default:
		c.Theme = common.ThemeAuto
	}
}

// DefaultPath returns the path of the configuration file.
func DefaultPath() (string, error) {
	configDir, err := common.GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, common.ConfigFileName), nil
}
