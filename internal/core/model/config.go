package model

import (
	"errors"
	"time"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes            int
	ShortBreakMinutes      int
	LongBreakMinutes       int
	SessionsUntilLongBreak int
	NotificationSound      string
}

// DefaultSettings returns the stock Pomodoro configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:            25,
		ShortBreakMinutes:      5,
		LongBreakMinutes:       15,
		SessionsUntilLongBreak: 4,
		NotificationSound:      "",
	}
}

// Validate checks that every duration field is a positive integer.
func (settings Settings) Validate() error {
	if settings.WorkMinutes <= 0 {
		return errors.New("work duration must be a positive number of minutes")
	}
	if settings.ShortBreakMinutes <= 0 {
		return errors.New("short break must be a positive number of minutes")
	}
	if settings.LongBreakMinutes <= 0 {
		return errors.New("long break must be a positive number of minutes")
	}
	if settings.SessionsUntilLongBreak <= 0 {
		return errors.New("sessions until long break must be a positive number")
	}
	return nil
}

// CycleConfig converts settings to the session cycle configuration.
func (settings Settings) CycleConfig() CycleConfig {
	return CycleConfig{
		WorkDuration:           time.Duration(settings.WorkMinutes) * time.Minute,
		ShortBreakDuration:     time.Duration(settings.ShortBreakMinutes) * time.Minute,
		LongBreakDuration:      time.Duration(settings.LongBreakMinutes) * time.Minute,
		SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
	}
}

// CycleConfig contains runtime durations for the session state machine.
type CycleConfig struct {
	WorkDuration           time.Duration
	ShortBreakDuration     time.Duration
	LongBreakDuration      time.Duration
	SessionsUntilLongBreak int
}
