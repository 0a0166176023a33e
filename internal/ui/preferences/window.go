// Package preferences handles the settings window.
package preferences

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/model"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/storage"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/ui/picker"
)

// Window handles the settings UI. Nothing is committed until every numeric
// field validates; bad input keeps the window open.
type Window struct {
	window   fyne.Window
	settings model.Settings
	store    *storage.Store
	onSave   func(model.Settings)

	workEntry     *widget.Entry
	shortEntry    *widget.Entry
	longEntry     *widget.Entry
	sessionsEntry *widget.Entry
	soundLabel    *widget.Label
}

// New creates the settings window. onSave receives the validated settings.
func New(app fyne.App, settings model.Settings, store *storage.Store, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Timer Settings")

	workEntry := widget.NewEntry()
	shortEntry := widget.NewEntry()
	longEntry := widget.NewEntry()
	sessionsEntry := widget.NewEntry()

	soundLabel := widget.NewLabel(soundDisplayName(settings.NotificationSound))
	soundLabel.Truncation = fyne.TextTruncateEllipsis
	browseButton := widget.NewButton("Browse...", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Duration Settings (minutes)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work duration"), layout.NewSpacer(), workEntry),
		container.NewHBox(widget.NewLabel("Short break"), layout.NewSpacer(), shortEntry),
		container.NewHBox(widget.NewLabel("Long break"), layout.NewSpacer(), longEntry),
		container.NewHBox(widget.NewLabel("Sessions until long break"), layout.NewSpacer(), sessionsEntry),
		widget.NewLabelWithStyle("Notification Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, browseButton, soundLabel),
	)

	saveButton := widget.NewButton("Save Settings", nil)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, saveButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 360))

	prefs := &Window{
		window:        window,
		settings:      settings,
		store:         store,
		onSave:        onSave,
		workEntry:     workEntry,
		shortEntry:    shortEntry,
		longEntry:     longEntry,
		sessionsEntry: sessionsEntry,
		soundLabel:    soundLabel,
	}
	prefs.fillEntries()

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide
	browseButton.OnTapped = prefs.handleBrowse
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the window values with the current record.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.fillEntries()
}

func (prefs *Window) fillEntries() {
	prefs.workEntry.SetText(strconv.Itoa(prefs.settings.WorkMinutes))
	prefs.shortEntry.SetText(strconv.Itoa(prefs.settings.ShortBreakMinutes))
	prefs.longEntry.SetText(strconv.Itoa(prefs.settings.LongBreakMinutes))
	prefs.sessionsEntry.SetText(strconv.Itoa(prefs.settings.SessionsUntilLongBreak))
	prefs.soundLabel.SetText(soundDisplayName(prefs.settings.NotificationSound))
}

func (prefs *Window) handleSave() {
	edited, err := prefs.parseEntries()
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}

	prefs.settings = edited
	if prefs.onSave != nil {
		prefs.onSave(edited)
	}
	prefs.window.Hide()
}

// parseEntries validates every numeric field before anything is committed.
func (prefs *Window) parseEntries() (model.Settings, error) {
	edited := prefs.settings

	fields := []struct {
		entry  *widget.Entry
		target *int
	}{
		{prefs.workEntry, &edited.WorkMinutes},
		{prefs.shortEntry, &edited.ShortBreakMinutes},
		{prefs.longEntry, &edited.LongBreakMinutes},
		{prefs.sessionsEntry, &edited.SessionsUntilLongBreak},
	}
	for _, field := range fields {
		value, err := strconv.Atoi(field.entry.Text)
		if err != nil || value <= 0 {
			return model.Settings{}, errors.New("please enter valid positive numbers for all duration fields")
		}
		*field.target = value
	}

	if err := edited.Validate(); err != nil {
		return model.Settings{}, err
	}
	return edited, nil
}

func (prefs *Window) handleBrowse() {
	picker.ShowSoundFile(prefs.window, func(sourcePath string) {
		installedPath, err := prefs.store.InstallSound(sourcePath, storage.SelectedSoundStem)
		if err != nil {
			dialog.ShowError(fmt.Errorf("could not copy sound file: %w", err), prefs.window)
			return
		}
		prefs.settings.NotificationSound = installedPath
		prefs.soundLabel.SetText("Custom: " + filepath.Base(sourcePath))
		dialog.ShowInformation("Sound Selected", "Sound file copied to:\n"+installedPath, prefs.window)
	})
}

func soundDisplayName(soundPath string) string {
	if soundPath == "" {
		return "Default beep"
	}
	return filepath.Base(soundPath)
}
