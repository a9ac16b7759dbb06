package config

import (
	"path/filepath"
	"testing"
)

func TestLoadSettingsDefaultsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.StartScreen != "toolcalls" {
		t.Errorf("StartScreen = %q, want %q", s.StartScreen, "toolcalls")
	}
	if s.DatabasePath != "" {
		t.Errorf("DatabasePath = %q, want empty", s.DatabasePath)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	want := &Settings{DatabasePath: "/tmp/other.db", StartScreen: "logs"}
	if err := SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if got.DatabasePath != want.DatabasePath {
		t.Errorf("DatabasePath = %q, want %q", got.DatabasePath, want.DatabasePath)
	}
	if got.StartScreen != want.StartScreen {
		t.Errorf("StartScreen = %q, want %q", got.StartScreen, want.StartScreen)
	}
}

func TestDatabasePathPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(DatabaseEnvVar, "")

	tests := []struct {
		name     string
		env      string
		settings *Settings
		want     string
	}{
		{
			name: "default location",
			want: filepath.Join(home, HomeDirName, DatabaseFileName),
		},
		{
			name:     "settings file overrides default",
			settings: &Settings{DatabasePath: "/data/settings.db"},
			want:     "/data/settings.db",
		},
		{
			name:     "environment overrides settings",
			env:      "/data/env.db",
			settings: &Settings{DatabasePath: "/data/settings.db"},
			want:     "/data/env.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(DatabaseEnvVar, tt.env)
			got, err := DatabasePath(tt.settings)
			if err != nil {
				t.Fatalf("DatabasePath() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DatabasePath() = %q, want %q", got, tt.want)
			}
		})
	}
}
