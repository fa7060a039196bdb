// Package models defines the persisted data structures.
package models

// Settings represents global application settings.
// This corresponds to ~/.eetoolbox/settings.yaml.
type Settings struct {
	Version int    `yaml:"version"`
	LogFile string `yaml:"log_file"` // calculation history log path
	Color   bool   `yaml:"color"`    // styled terminal output
}

// NewSettings creates settings with default values. The history log defaults
// to calc_log.txt in the working directory.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		LogFile: "calc_log.txt",
		Color:   true,
	}
}
