// Package driver schedules the one-second countdown over a session cycle.
package driver

import (
	"sync"
	"time"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/model"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/session"
)

// Notifier plays the session-completion cue. Implementations must return
// without waiting on playback.
type Notifier interface {
	Notify(soundPath string)
}

// Config contains runtime options for the Driver.
type Config struct {
	TickInterval time.Duration
}

// Driver owns the session cycle and the tick scheduling around it. Each tick
// arms the next one through a single cancellable timer handle; pause, reset
// and skip stop that handle before anything re-arms, so two tick chains can
// never run at once. The schedule is relative to when the previous tick
// finished, not to the wall clock, so long sessions may drift under load.
type Driver struct {
	mu       sync.Mutex
	cycle    *session.Cycle
	settings model.Settings
	options  Config
	notifier Notifier
	pending  *time.Timer
	events   []chan Event
	closed   bool
}

// New creates a Driver around a fresh cycle built from settings.
func New(settings model.Settings, notifier Notifier, options Config) *Driver {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Driver{
		cycle:    session.New(settings.CycleConfig()),
		settings: settings,
		options:  options,
		notifier: notifier,
	}
}

// Subscribe registers a new observer channel.
func (driver *Driver) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	driver.mu.Lock()
	driver.events = append(driver.events, ch)
	driver.mu.Unlock()
	return ch
}

// Snapshot returns the observable cycle state.
func (driver *Driver) Snapshot() session.Snapshot {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.cycle.Snapshot()
}

// Settings returns the live settings record.
func (driver *Driver) Settings() model.Settings {
	driver.mu.Lock()
	defer driver.mu.Unlock()
	return driver.settings
}

// Start begins the countdown. Only an idle cycle starts; calls while running
// or paused are ignored.
func (driver *Driver) Start() {
	driver.mu.Lock()
	if driver.closed || driver.cycle.Run() != session.StateIdle {
		driver.mu.Unlock()
		return
	}
	driver.cycle.SetRun(session.StateRunning)
	driver.scheduleLocked()
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
}

// Pause freezes the countdown and cancels the pending tick. Repeated calls
// are no-ops.
func (driver *Driver) Pause() {
	driver.mu.Lock()
	if driver.cycle.Run() != session.StateRunning {
		driver.mu.Unlock()
		return
	}
	driver.cancelLocked()
	driver.cycle.SetRun(session.StatePaused)
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
}

// Resume continues a paused countdown.
func (driver *Driver) Resume() {
	driver.mu.Lock()
	if driver.closed || driver.cycle.Run() != session.StatePaused {
		driver.mu.Unlock()
		return
	}
	driver.cycle.SetRun(session.StateRunning)
	driver.scheduleLocked()
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
}

// Reset cancels any pending tick and restores the full duration of the
// current session. Valid from any state.
func (driver *Driver) Reset() {
	driver.mu.Lock()
	driver.cancelLocked()
	driver.cycle.ResetCurrent()
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
}

// Skip ends the current session immediately through the same cycle rule as a
// natural completion, without the completion sound. A skipped work session
// still counts toward the long-break cadence.
func (driver *Driver) Skip() {
	driver.mu.Lock()
	driver.cancelLocked()
	finished := driver.cycle.Kind()
	driver.cycle.Advance()
	driver.cycle.SetRun(session.StateIdle)
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventSkipped, Finished: finished, Snapshot: snapshot, At: time.Now()})
}

// UpdateSettings replaces the settings record. When the countdown is not
// running the current session restarts at its new duration.
func (driver *Driver) UpdateSettings(settings model.Settings) {
	driver.mu.Lock()
	driver.settings = settings
	driver.cycle.SetConfig(settings.CycleConfig())
	if driver.cycle.Run() != session.StateRunning {
		driver.cancelLocked()
		driver.cycle.ResetCurrent()
	}
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventStateChange, Snapshot: snapshot, At: time.Now()})
}

// Stop cancels scheduling and closes observer channels.
func (driver *Driver) Stop() {
	driver.mu.Lock()
	if driver.closed {
		driver.mu.Unlock()
		return
	}
	driver.closed = true
	driver.cancelLocked()
	driver.cycle.SetRun(session.StateIdle)
	events := driver.events
	driver.events = nil
	driver.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (driver *Driver) scheduleLocked() {
	driver.cancelLocked()
	driver.pending = time.AfterFunc(driver.options.TickInterval, driver.tick)
}

func (driver *Driver) cancelLocked() {
	if driver.pending != nil {
		driver.pending.Stop()
		driver.pending = nil
	}
}

func (driver *Driver) tick() {
	driver.mu.Lock()
	if driver.closed || driver.cycle.Run() != session.StateRunning {
		// A cancelled timer can still fire once; the run-state check makes
		// the stray callback harmless.
		driver.mu.Unlock()
		return
	}
	driver.cycle.Tick()

	if driver.cycle.Remaining() <= 0 {
		finished := driver.cycle.Kind()
		driver.cycle.SetRun(session.StateIdle)
		driver.cycle.Advance()
		soundPath := driver.settings.NotificationSound
		snapshot := driver.cycle.Snapshot()
		driver.mu.Unlock()

		if driver.notifier != nil {
			driver.notifier.Notify(soundPath)
		}
		driver.emit(Event{Type: EventCompleted, Finished: finished, Snapshot: snapshot, At: time.Now()})
		return
	}

	driver.scheduleLocked()
	snapshot := driver.cycle.Snapshot()
	driver.mu.Unlock()

	driver.emit(Event{Type: EventProgress, Snapshot: snapshot, At: time.Now()})
}

func (driver *Driver) emit(event Event) {
	driver.mu.Lock()
	events := append([]chan Event(nil), driver.events...)
	driver.mu.Unlock()

	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
