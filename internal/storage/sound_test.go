package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstallSoundCopiesWithStem(t *testing.T) {
	sourceDir := t.TempDir()
	sourcePath := filepath.Join(sourceDir, "my ringtone.mp3")
	payload := []byte("fake mp3 bytes")
	if err := os.WriteFile(sourcePath, payload, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	storeDir := t.TempDir()
	store := NewStore(storeDir)

	installedPath, err := store.InstallSound(sourcePath, SelectedSoundStem)
	if err != nil {
		t.Fatalf("InstallSound() = %v", err)
	}

	want := filepath.Join(storeDir, soundDirName, "notification.mp3")
	if installedPath != want {
		t.Fatalf("installed path = %q, want %q", installedPath, want)
	}
	copied, err := os.ReadFile(installedPath)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(copied) != string(payload) {
		t.Fatalf("copied bytes = %q, want %q", copied, payload)
	}
}

func TestInstallSoundReplacesPreviousPick(t *testing.T) {
	sourceDir := t.TempDir()
	first := filepath.Join(sourceDir, "first.wav")
	second := filepath.Join(sourceDir, "second.wav")
	if err := os.WriteFile(first, []byte("first"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := os.WriteFile(second, []byte("second"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	store := NewStore(t.TempDir())

	if _, err := store.InstallSound(first, FirstRunSoundStem); err != nil {
		t.Fatalf("install first: %v", err)
	}
	installedPath, err := store.InstallSound(second, FirstRunSoundStem)
	if err != nil {
		t.Fatalf("install second: %v", err)
	}

	copied, err := os.ReadFile(installedPath)
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(copied) != "second" {
		t.Fatalf("copied bytes = %q, want %q", copied, "second")
	}
}

func TestInstallSoundMissingSource(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, err := store.InstallSound(filepath.Join(t.TempDir(), "gone.wav"), SelectedSoundStem); err == nil {
		t.Fatal("InstallSound(missing) = nil, want error")
	}
}
