package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ELEC2645/eetoolbox/internal/models"
)

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	want := models.NewSettings()
	if *settings != *want {
		t.Errorf("LoadSettings() = %+v, want defaults %+v", settings, want)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	settings := models.NewSettings()
	settings.LogFile = filepath.Join(home, "results.txt")
	settings.Color = false

	if err := SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	// The settings file lands in the global directory.
	path := filepath.Join(home, GlobalDirName, SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if *loaded != *settings {
		t.Errorf("LoadSettings() = %+v, want %+v", loaded, settings)
	}
}

func TestLoadSettingsKeepsDefaultsForMissingKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, GlobalDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	// A partial file only overrides the keys it names.
	partial := []byte("log_file: other.txt\n")
	if err := os.WriteFile(filepath.Join(dir, SettingsFileName), partial, 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if settings.LogFile != "other.txt" {
		t.Errorf("LogFile = %q, want other.txt", settings.LogFile)
	}
	if !settings.Color {
		t.Error("Color default lost when loading partial settings")
	}
}

func TestLoadSettingsMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, GlobalDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, SettingsFileName), []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettings(); err == nil {
		t.Error("LoadSettings() on malformed file succeeded, want error")
	}
}
