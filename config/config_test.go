package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yllada/trayapp/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.ShowOnStart {
		t.Error("ShowOnStart should be true by default")
	}
	if !cfg.HideOnClose {
		t.Error("HideOnClose should be true by default")
	}
	if !cfg.NotifyOnHide {
		t.Error("NotifyOnHide should be true by default")
	}
	if cfg.Theme != common.ThemeAuto {
		t.Errorf("Theme = %v, want %v", cfg.Theme, common.ThemeAuto)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
	if common.FileExists(path) {
		t.Error("LoadFrom() should not create the config file")
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "show_on_start: false\ntheme: dark\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.ShowOnStart {
		t.Error("ShowOnStart should be false")
	}
	if cfg.Theme != common.ThemeDark {
		t.Errorf("Theme = %v, want %v", cfg.Theme, common.ThemeDark)
	}
	if !cfg.HideOnClose {
		t.Error("HideOnClose should keep its default")
	}
}

func TestLoadFrom_InvalidTheme(t *testing.T) {
	path := writeConfig(t, "theme: neon\n")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Theme != common.ThemeAuto {
		t.Errorf("Theme = %v, want fallback %v", cfg.Theme, common.ThemeAuto)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", "minimize_everything: true\n"},
		{"wrong type", "show_on_start: sometimes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			if !errors.Is(err, common.ErrConfigLoad) {
				t.Errorf("LoadFrom() error = %v, want %v", err, common.ErrConfigLoad)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error = %v", err)
	}
	if filepath.Base(path) != common.ConfigFileName {
		t.Errorf("DefaultPath() = %v, want file %v", path, common.ConfigFileName)
	}
}

func TestLoadFrom_EmptyFile(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
}
