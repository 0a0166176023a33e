// Package storage persists the settings record and installed sound assets.
package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes            int    `yaml:"work_minutes"`
	ShortBreakMinutes      int    `yaml:"short_break_minutes"`
	LongBreakMinutes       int    `yaml:"long_break_minutes"`
	SessionsUntilLongBreak int    `yaml:"sessions_until_long_break"`
	NotificationSound      string `yaml:"notification_sound"`
}

// Store reads and writes application state under a single directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore roots the store in the user configuration directory.
func DefaultStore(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewStore(filepath.Join(configDir, appName)), nil
}

// Load reads the settings record. Keys missing from the file are filled from
// the defaults while present keys are preserved. Any failure falls back to
// the full defaults, which are then persisted best-effort so the next run
// finds a valid file.
func (store *Store) Load() model.Settings {
	settings, err := store.load()
	if err == nil {
		return settings
	}
	if !errors.Is(err, os.ErrNotExist) {
		log.Printf("load settings: %v", err)
	}

	settings = model.DefaultSettings()
	if saveErr := store.Save(settings); saveErr != nil {
		log.Printf("persist default settings: %v", saveErr)
	}
	return settings
}

func (store *Store) load() (model.Settings, error) {
	rawData, err := os.ReadFile(store.settingsPath())
	if err != nil {
		return model.Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.Settings{}, fmt.Errorf("parse settings yaml: %w", err)
	}

	settings := model.DefaultSettings()
	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// Save serializes and writes the settings record. A lost write is non-fatal
// for a utility of this size; callers log the returned error and move on.
func (store *Store) Save(settings model.Settings) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:            settings.WorkMinutes,
		ShortBreakMinutes:      settings.ShortBreakMinutes,
		LongBreakMinutes:       settings.LongBreakMinutes,
		SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
		NotificationSound:      settings.NotificationSound,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(store.settingsPath(), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func (store *Store) settingsPath() string {
	return filepath.Join(store.dir, settingsFileName)
}

// applyYamlSettings copies only usable values onto the defaults, which is
// what repairs partial or damaged records without discarding present keys.
func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.SessionsUntilLongBreak > 0 {
		settings.SessionsUntilLongBreak = fileData.SessionsUntilLongBreak
	}
	if fileData.NotificationSound != "" {
		settings.NotificationSound = fileData.NotificationSound
	}
}
