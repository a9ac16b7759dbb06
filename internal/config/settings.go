package config

// Settings are the user's persisted preferences, stored in
// ~/.cozyreq/settings.yaml.
type Settings struct {
	// DatabasePath overrides the default ~/.cozyreq/cozyreq.db location.
	DatabasePath string `yaml:"database_path,omitempty"`

	// StartScreen selects the screen shown on launch: "toolcalls" or "logs".
	StartScreen string `yaml:"start_screen,omitempty"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		StartScreen: "toolcalls",
	}
}

// LoadSettings loads settings from disk, falling back to defaults when no
// settings file exists.
func LoadSettings() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	s, err := LoadYAMLOrDefault(path, DefaultSettings)
	if err != nil {
		return nil, err
	}
	if s.StartScreen == "" {
		s.StartScreen = "toolcalls"
	}
	return s, nil
}

// SaveSettings persists settings to disk.
func SaveSettings(s *Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return SaveYAML(path, s)
}
