package session

import (
	"time"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/model"
)

// Kind identifies the current session type.
type Kind string

const (
	KindWork       Kind = "work"
	KindShortBreak Kind = "short_break"
	KindLongBreak  Kind = "long_break"
)

// DisplayName returns the user-facing session title.
func (kind Kind) DisplayName() string {
	switch kind {
	case KindShortBreak:
		return "Short Break"
	case KindLongBreak:
		return "Long Break"
	default:
		return "Work Session"
	}
}

// RunState describes whether the countdown is advancing.
type RunState string

const (
	StateIdle    RunState = "idle"
	StateRunning RunState = "running"
	StatePaused  RunState = "paused"
)

// Cycle is the Pomodoro state machine. It mutates nothing beyond its own
// fields; scheduling and notification belong to the driver that owns it.
type Cycle struct {
	config    model.CycleConfig
	kind      Kind
	run       RunState
	remaining time.Duration
	completed int
}

// New creates a Cycle positioned at the start of a work session.
func New(config model.CycleConfig) *Cycle {
	cycle := &Cycle{kind: KindWork, run: StateIdle}
	cycle.SetConfig(config)
	cycle.remaining = cycle.config.WorkDuration
	return cycle
}

// SetConfig replaces the cycle durations. Non-positive fields fall back to
// the defaults so the countdown can never land on a zero-length session.
func (cycle *Cycle) SetConfig(config model.CycleConfig) {
	defaults := model.DefaultSettings().CycleConfig()
	if config.WorkDuration <= 0 {
		config.WorkDuration = defaults.WorkDuration
	}
	if config.ShortBreakDuration <= 0 {
		config.ShortBreakDuration = defaults.ShortBreakDuration
	}
	if config.LongBreakDuration <= 0 {
		config.LongBreakDuration = defaults.LongBreakDuration
	}
	if config.SessionsUntilLongBreak <= 0 {
		config.SessionsUntilLongBreak = defaults.SessionsUntilLongBreak
	}
	cycle.config = config
}

// Tick removes one second while running. The floor is zero; reaching it is
// the owning driver's cue to handle completion.
func (cycle *Cycle) Tick() {
	if cycle.run == StateRunning && cycle.remaining > 0 {
		cycle.remaining -= time.Second
	}
}

// Advance moves to the next session. Finishing a work session counts toward
// the long-break cadence whether it ran out or was skipped; both paths end
// up here.
func (cycle *Cycle) Advance() {
	if cycle.kind == KindWork {
		cycle.completed++
		if cycle.completed%cycle.config.SessionsUntilLongBreak == 0 {
			cycle.kind = KindLongBreak
			cycle.remaining = cycle.config.LongBreakDuration
		} else {
			cycle.kind = KindShortBreak
			cycle.remaining = cycle.config.ShortBreakDuration
		}
		return
	}
	cycle.kind = KindWork
	cycle.remaining = cycle.config.WorkDuration
}

// ResetCurrent restores the full duration of the current session and stops
// the countdown. Kind and the completed count are untouched.
func (cycle *Cycle) ResetCurrent() {
	cycle.remaining = cycle.durationFor(cycle.kind)
	cycle.run = StateIdle
}

// SetRun updates the run state.
func (cycle *Cycle) SetRun(run RunState) {
	cycle.run = run
}

// Kind returns the current session type.
func (cycle *Cycle) Kind() Kind {
	return cycle.kind
}

// Run returns the current run state.
func (cycle *Cycle) Run() RunState {
	return cycle.run
}

// Remaining returns the time left in the current session.
func (cycle *Cycle) Remaining() time.Duration {
	return cycle.remaining
}

// Completed returns how many work sessions have finished.
func (cycle *Cycle) Completed() int {
	return cycle.completed
}

// Snapshot captures the observable state for rendering.
type Snapshot struct {
	Kind      Kind
	Run       RunState
	Remaining time.Duration
	Completed int
}

// Snapshot returns a copy of the observable cycle state.
func (cycle *Cycle) Snapshot() Snapshot {
	return Snapshot{
		Kind:      cycle.kind,
		Run:       cycle.run,
		Remaining: cycle.remaining,
		Completed: cycle.completed,
	}
}

func (cycle *Cycle) durationFor(kind Kind) time.Duration {
	switch kind {
	case KindShortBreak:
		return cycle.config.ShortBreakDuration
	case KindLongBreak:
		return cycle.config.LongBreakDuration
	default:
		return cycle.config.WorkDuration
	}
}
