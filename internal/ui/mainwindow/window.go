// Package mainwindow renders the countdown and forwards control actions to
// the timer driver.
package mainwindow

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/driver"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/session"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/ui/picker"
)

// Window is the main timer window. It holds a reference to the driver and
// renders snapshots; it owns no timer state of its own.
type Window struct {
	window fyne.Window
	driver *driver.Driver
	onQuit func()

	timeText     *canvas.Text
	sessionLabel *widget.Label
	countLabel   *widget.Label

	startButton    *widget.Button
	pauseButton    *widget.Button
	resetButton    *widget.Button
	skipButton     *widget.Button
	settingsButton *widget.Button
}

// New creates the main window wired to the driver. onSettings opens the
// settings window; onQuit shuts the application down after the user
// confirms.
func New(app fyne.App, timerDriver *driver.Driver, onSettings, onQuit func()) *Window {
	window := app.NewWindow("Pomodoro Timer")

	mainWindow := &Window{
		window: window,
		driver: timerDriver,
		onQuit: onQuit,
	}

	snapshot := timerDriver.Snapshot()

	mainWindow.timeText = canvas.NewText(FormatRemaining(snapshot.Remaining), theme.Color(theme.ColorNameForeground))
	mainWindow.timeText.TextSize = 48
	mainWindow.timeText.TextStyle = fyne.TextStyle{Bold: true}
	mainWindow.timeText.Alignment = fyne.TextAlignCenter

	mainWindow.sessionLabel = widget.NewLabelWithStyle(snapshot.Kind.DisplayName(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mainWindow.countLabel = widget.NewLabelWithStyle("Sessions completed: 0", fyne.TextAlignCenter, fyne.TextStyle{})

	mainWindow.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), mainWindow.handleStart)
	mainWindow.startButton.Importance = widget.HighImportance
	mainWindow.pauseButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), timerDriver.Pause)
	mainWindow.pauseButton.Disable()
	mainWindow.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), timerDriver.Reset)
	mainWindow.skipButton = widget.NewButtonWithIcon("Skip", theme.MediaSkipNextIcon(), timerDriver.Skip)
	mainWindow.settingsButton = widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), onSettings)

	controls := container.NewHBox(
		mainWindow.startButton,
		mainWindow.pauseButton,
		mainWindow.resetButton,
		mainWindow.skipButton,
	)

	content := container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		mainWindow.sessionLabel,
		container.NewPadded(mainWindow.timeText),
		container.NewCenter(controls),
		container.NewCenter(mainWindow.settingsButton),
		mainWindow.countLabel,
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(380, 420))
	window.CenterOnScreen()

	// Quitting is only possible through the confirm prompt.
	window.SetCloseIntercept(mainWindow.ConfirmQuit)

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyReturn, fyne.KeyEnter, fyne.KeySpace:
			mainWindow.toggle()
		case fyne.KeyEscape:
			timerDriver.Reset()
		}
	})

	return mainWindow
}

// Show displays the window.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
}

// Render updates the display from a cycle snapshot.
func (mainWindow *Window) Render(snapshot session.Snapshot) {
	mainWindow.timeText.Text = FormatRemaining(snapshot.Remaining)
	mainWindow.timeText.Refresh()
	mainWindow.sessionLabel.SetText(snapshot.Kind.DisplayName())
	mainWindow.countLabel.SetText(fmt.Sprintf("Sessions completed: %d", snapshot.Completed))

	switch snapshot.Run {
	case session.StateRunning:
		mainWindow.startButton.SetText("Running...")
		mainWindow.startButton.Disable()
		mainWindow.pauseButton.Enable()
	case session.StatePaused:
		mainWindow.startButton.SetText("Resume")
		mainWindow.startButton.Enable()
		mainWindow.pauseButton.Disable()
	default:
		mainWindow.startButton.SetText("Start")
		mainWindow.startButton.Enable()
		mainWindow.pauseButton.Disable()
	}
}

// ShowCompletion reports a naturally finished session.
func (mainWindow *Window) ShowCompletion(finished session.Kind) {
	dialog.ShowInformation("Session Complete", finished.DisplayName()+" completed!\n\nGreat work!", mainWindow.window)
}

// ConfirmQuit asks before shutting the application down.
func (mainWindow *Window) ConfirmQuit() {
	dialog.ShowConfirm("Quit", "Do you want to quit the Pomodoro Timer?", func(confirmed bool) {
		if confirmed && mainWindow.onQuit != nil {
			mainWindow.onQuit()
		}
	}, mainWindow.window)
}

// PromptSoundSetup offers to pick a notification sound on first run. onPick
// receives the chosen source path. Declining either prompt does nothing.
func (mainWindow *Window) PromptSoundSetup(onPick func(sourcePath string)) {
	dialog.ShowConfirm("Setup Notification Sound",
		"Would you like to upload a custom notification sound?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			picker.ShowSoundFile(mainWindow.window, onPick)
		}, mainWindow.window)
}

// ShowSoundInstalled confirms where the picked sound was copied.
func (mainWindow *Window) ShowSoundInstalled(installedPath string) {
	dialog.ShowInformation("Sound Set", "Notification sound saved to:\n"+installedPath, mainWindow.window)
}

// ShowSoundError reports a failed sound installation. This and the settings
// window are the only places a sound problem is user-visible; completion
// notifications silently fall back to the plain tone.
func (mainWindow *Window) ShowSoundError(err error) {
	dialog.ShowError(fmt.Errorf("could not save notification sound: %w", err), mainWindow.window)
}

func (mainWindow *Window) handleStart() {
	mainWindow.toggle()
}

// toggle maps the start button and keyboard shortcut onto the driver: idle
// starts, paused resumes, running is left to the pause button.
func (mainWindow *Window) toggle() {
	switch mainWindow.driver.Snapshot().Run {
	case session.StateIdle:
		mainWindow.driver.Start()
	case session.StatePaused:
		mainWindow.driver.Resume()
	}
}

// FormatRemaining renders a countdown as MM:SS.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
