// Package config handles settings loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global eetoolbox directory.
	GlobalDirName = ".eetoolbox"

	// SettingsFileName is the name of the settings file within it.
	SettingsFileName = "settings.yaml"
)

// GlobalDir returns the path to the global eetoolbox directory
// (~/.eetoolbox/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}
