package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/model"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	settings := model.Settings{
		WorkMinutes:            25,
		ShortBreakMinutes:      5,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 4,
		NotificationSound:      "",
	}

	if err := store.Save(settings); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	if got := store.Load(); got != settings {
		t.Fatalf("Load() = %+v, want %+v", got, settings)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	got := store.Load()

	if got != model.DefaultSettings() {
		t.Fatalf("Load() = %+v, want defaults", got)
	}
	if _, err := os.Stat(filepath.Join(dir, settingsFileName)); err != nil {
		t.Fatalf("defaults file not written: %v", err)
	}
}

func TestLoadMergesMissingKeys(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	partial := "work_minutes: 50\nshort_break_minutes: 10\nnotification_sound: /tmp/ding.wav\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(partial), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := store.Load()

	want := model.Settings{
		WorkMinutes:            50,
		ShortBreakMinutes:      10,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 4,
		NotificationSound:      "/tmp/ding.wav",
	}
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadRepairsNonPositiveValues(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	damaged := "work_minutes: -3\nlong_break_minutes: 20\nsessions_until_long_break: 0\n"
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte(damaged), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := store.Load()

	want := model.DefaultSettings()
	want.LongBreakMinutes = 20
	if got != want {
		t.Fatalf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadMalformedFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got := store.Load()

	if got != model.DefaultSettings() {
		t.Fatalf("Load() = %+v, want defaults", got)
	}

	// The damaged file is replaced so the next run loads cleanly.
	if reloaded := store.Load(); reloaded != model.DefaultSettings() {
		t.Fatalf("reload = %+v, want defaults", reloaded)
	}
}
