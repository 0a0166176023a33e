package driver

import (
	"time"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/session"
)

// EventType defines the type of driver event.
type EventType string

const (
	// EventStateChange reports a run-state transition (start, pause,
	// resume, reset, settings commit).
	EventStateChange EventType = "state_change"
	// EventProgress reports one countdown tick.
	EventProgress EventType = "progress"
	// EventCompleted reports a session that ran out naturally.
	EventCompleted EventType = "completed"
	// EventSkipped reports a session ended by the user.
	EventSkipped EventType = "skipped"
)

// Event represents a driver update for observers.
type Event struct {
	Type EventType
	// Finished is the session that just ended. Set for EventCompleted and
	// EventSkipped only.
	Finished session.Kind
	Snapshot session.Snapshot
	At       time.Time
}
