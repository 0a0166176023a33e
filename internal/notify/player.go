// Package notify plays the session-completion cue off the scheduling path.
package notify

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// maxPlayback caps how long a completion cue may sound, no matter how long
// the clip is.
const maxPlayback = 5 * time.Second

const (
	fallbackSampleRate = beep.SampleRate(44100)
	fallbackFrequency  = 880.0
	fallbackDuration   = 400 * time.Millisecond
)

var errNoSoundConfigured = errors.New("no notification sound configured")

// Player decodes and plays notification sounds. Playback failures never
// surface; they degrade to a plain tone, or the terminal bell when no audio
// device is available.
type Player struct {
	initOnce   sync.Once
	sampleRate beep.SampleRate
	speakerErr error
}

// NewPlayer creates a Player. The audio device is opened lazily on the first
// cue so a missing device costs nothing until a session actually completes.
func NewPlayer() *Player {
	return &Player{}
}

// Notify plays the configured sound capped at five seconds, falling back to
// the plain tone when the file is unreadable or playback fails. It returns
// immediately; decoding and playback run on their own goroutine, and the
// five-second cap is independent of anything the timer does afterwards.
func (player *Player) Notify(soundPath string) {
	go func() {
		if err := player.play(soundPath); err != nil {
			player.fallback()
		}
	}()
}

func (player *Player) play(soundPath string) error {
	if soundPath == "" {
		return errNoSoundConfigured
	}

	file, err := os.Open(soundPath)
	if err != nil {
		return fmt.Errorf("open sound file: %w", err)
	}

	streamer, format, err := decode(file, soundPath)
	if err != nil {
		file.Close()
		return fmt.Errorf("decode sound file: %w", err)
	}

	if err := player.ensureSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		return fmt.Errorf("open audio device: %w", err)
	}

	playable := beep.Streamer(streamer)
	if format.SampleRate != player.sampleRate {
		playable = beep.Resample(4, format.SampleRate, player.sampleRate, streamer)
	}

	capped := beep.Take(player.sampleRate.N(maxPlayback), playable)
	speaker.Play(beep.Seq(capped, beep.Callback(func() {
		streamer.Close()
	})))
	return nil
}

func decode(file *os.File, soundPath string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(soundPath)) {
	case ".wav":
		return wav.Decode(file)
	case ".mp3":
		return mp3.Decode(file)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported sound format %q", filepath.Ext(soundPath))
	}
}

// ensureSpeaker initializes the audio device once, at the sample rate of the
// first clip played. Later clips at other rates are resampled.
func (player *Player) ensureSpeaker(rate beep.SampleRate) error {
	player.initOnce.Do(func() {
		player.sampleRate = rate
		player.speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	return player.speakerErr
}

func (player *Player) fallback() {
	if err := player.ensureSpeaker(fallbackSampleRate); err != nil {
		fmt.Print("\a")
		return
	}
	tone := toneStreamer(player.sampleRate, fallbackFrequency)
	speaker.Play(beep.Take(player.sampleRate.N(fallbackDuration), tone))
}

func toneStreamer(rate beep.SampleRate, frequency float64) beep.Streamer {
	step := frequency / float64(rate)
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := 0.4 * math.Sin(2*math.Pi*phase)
			samples[i][0] = value
			samples[i][1] = value
			phase += step
			if phase >= 1 {
				phase--
			}
		}
		return len(samples), true
	})
}
