// Package settings persists the player's preferences (sound and trajectory
// preview) between sessions using the platform data directory.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the data directory name used by gdata.
const AppName = "tui-slingshot"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are the options exposed in the in-game settings menu.
type Settings struct {
	SoundEnabled   bool `yaml:"sound_enabled"`
	ShowTrajectory bool `yaml:"show_trajectory"`
}

// Default returns the settings used on first launch.
func Default() Settings {
	return Settings{
		SoundEnabled:   true,
		ShowTrajectory: true,
	}
}

// Manager loads and saves Settings.
// A Manager without a gdata backend keeps settings in memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open creates a manager backed by the platform data directory.
// If the directory cannot be opened the manager runs in memory-only mode and
// the error is logged.
func Open() *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn("settings: persistence disabled", "err", err)
		store = nil
	}
	return NewManager(store)
}

// NewManager creates a manager over store, which may be nil.
// Saved settings are loaded immediately; a load failure falls back to defaults.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{store: store, settings: Default()}
	if err := m.Load(); err != nil {
		log.Warn("settings: using defaults", "err", err)
	}
	return m
}

// Persistent reports whether settings survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads saved settings. Missing data leaves the defaults in place.
func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	m.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op without a backend.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}

// Get returns the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// Set replaces the current settings and saves them if they changed.
func (m *Manager) Set(s Settings) error {
	if s == m.settings {
		return nil
	}
	m.settings = s
	return m.Save()
}
