package mainwindow

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{name: "zero", remaining: 0, want: "00:00"},
		{name: "seconds only", remaining: 9 * time.Second, want: "00:09"},
		{name: "full session", remaining: 25 * time.Minute, want: "25:00"},
		{name: "mixed", remaining: 14*time.Minute + 59*time.Second, want: "14:59"},
		{name: "over an hour", remaining: 90 * time.Minute, want: "90:00"},
		{name: "negative clamps", remaining: -5 * time.Second, want: "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRemaining(tt.remaining); got != tt.want {
				t.Fatalf("FormatRemaining(%v) = %q, want %q", tt.remaining, got, tt.want)
			}
		})
	}
}
