package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const soundDirName = "assets"

// Sound asset stems. The first-run prompt and later re-selection each use a
// reserved name, so picking a new sound replaces the old copy instead of
// accumulating files.
const (
	FirstRunSoundStem = "user_notify"
	SelectedSoundStem = "notification"
)

// InstallSound copies the selected file into the asset directory under the
// given stem, keeping the source extension. The installed path is returned;
// the original file is never referenced in place.
func (store *Store) InstallSound(sourcePath, stem string) (string, error) {
	soundDir := filepath.Join(store.dir, soundDirName)
	if err := os.MkdirAll(soundDir, 0o755); err != nil {
		return "", fmt.Errorf("create sound directory: %w", err)
	}

	source, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("open selected sound: %w", err)
	}
	defer source.Close()

	targetPath := filepath.Join(soundDir, stem+filepath.Ext(sourcePath))
	target, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("create sound copy: %w", err)
	}
	defer target.Close()

	if _, err := io.Copy(target, source); err != nil {
		return "", fmt.Errorf("copy sound file: %w", err)
	}

	return targetPath, nil
}
