// Package config handles settings and path resolution for cozyreq.
package config

import (
	"os"
	"path/filepath"
)

const (
	// HomeDirName is the name of the cozyreq directory under $HOME.
	HomeDirName = ".cozyreq"

	// DatabaseFileName is the name of the SQLite database file.
	DatabaseFileName = "cozyreq.db"

	// SettingsFileName is the name of the settings file.
	SettingsFileName = "settings.yaml"

	// DatabaseEnvVar overrides the database path when set.
	DatabaseEnvVar = "COZYREQ_DB"
)

// HomeDir returns the path to the cozyreq directory (~/.cozyreq/).
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, HomeDirName), nil
}

// DatabasePath resolves the database location. Precedence: the COZYREQ_DB
// environment variable, then the settings file, then ~/.cozyreq/cozyreq.db.
func DatabasePath(settings *Settings) (string, error) {
	if path := os.Getenv(DatabaseEnvVar); path != "" {
		return path, nil
	}
	if settings != nil && settings.DatabasePath != "" {
		return settings.DatabasePath, nil
	}
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DatabaseFileName), nil
}

// SettingsPath returns the path to the settings.yaml file.
func SettingsPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// EnsureHomeDir creates the cozyreq directory if it doesn't exist.
func EnsureHomeDir() error {
	dir, err := HomeDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
