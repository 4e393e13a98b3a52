// Package common provides shared constants, types, and utilities
// used across the tray application.
package common

import (
	"os"
	"path/filepath"
)

// GetConfigDir returns the path to the application configuration directory.
// Unlike the log directory it is not created; a missing config means defaults.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", ConfigDirName), nil
}

// GetLogDir returns the log directory path.
func GetLogDir() string {
	configDir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "logs")
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
