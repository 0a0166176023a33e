package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// These tests exercise the error paths only; they must never reach
// speaker.Init, which needs a real audio device.

func TestPlayEmptyPath(t *testing.T) {
	player := NewPlayer()

	err := player.play("")

	if !errors.Is(err, errNoSoundConfigured) {
		t.Fatalf("play(\"\") = %v, want %v", err, errNoSoundConfigured)
	}
}

func TestPlayMissingFile(t *testing.T) {
	player := NewPlayer()

	err := player.play(filepath.Join(t.TempDir(), "missing.wav"))

	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("play(missing) = %v, want wrapped %v", err, os.ErrNotExist)
	}
}

func TestPlayUnsupportedFormat(t *testing.T) {
	soundPath := filepath.Join(t.TempDir(), "cue.ogg")
	if err := os.WriteFile(soundPath, []byte("not audio"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	player := NewPlayer()

	err := player.play(soundPath)

	if err == nil {
		t.Fatal("play(.ogg) = nil, want unsupported-format error")
	}
}

func TestToneStreamerFillsBuffer(t *testing.T) {
	tone := toneStreamer(fallbackSampleRate, fallbackFrequency)
	samples := make([][2]float64, 512)

	n, ok := tone.Stream(samples)

	if n != len(samples) || !ok {
		t.Fatalf("Stream() = (%d, %v), want (%d, true)", n, ok, len(samples))
	}
	var peak float64
	for _, sample := range samples {
		if sample[0] > peak {
			peak = sample[0]
		}
		if sample[0] < -1 || sample[0] > 1 || sample[0] != sample[1] {
			t.Fatalf("sample out of range or channels differ: %v", sample)
		}
	}
	if peak == 0 {
		t.Fatal("tone produced silence")
	}
}
