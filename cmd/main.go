package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/driver"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/model"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/core/session"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/notify"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/platform"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/storage"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/ui/mainwindow"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/ui/preferences"
	"github.com/Mondo-tmks/Poromodoro-GenByAi/internal/ui/tray"
)

const appName = "Pomodoro"

func main() {
	guard, err := platform.Acquire(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.pomodoro.timer")

	store, err := storage.DefaultStore(appName)
	if err != nil {
		log.Printf("settings store: %v", err)
		store = storage.NewStore(appName)
	}
	settings := store.Load()

	player := notify.NewPlayer()
	timerDriver := driver.New(settings, player, driver.Config{TickInterval: time.Second})

	prefsWindow := preferences.New(fyneApp, settings, store, func(updated model.Settings) {
		if err := store.Save(updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		timerDriver.UpdateSettings(updated)
	})

	window := mainwindow.New(fyneApp, timerDriver,
		func() {
			prefsWindow.UpdateSettings(timerDriver.Settings())
			prefsWindow.Show()
		},
		func() {
			timerDriver.Stop()
			fyneApp.Quit()
		})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: window.Show,
			OnToggle: func() {
				toggleTimer(timerDriver)
			},
			OnSkip: timerDriver.Skip,
			OnPreferences: func() {
				prefsWindow.UpdateSettings(timerDriver.Settings())
				prefsWindow.Show()
			},
			OnQuit: window.ConfirmQuit,
		})
	}

	events := timerDriver.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			fyne.Do(func() {
				handleEvent(event, window, trayManager)
			})
		}
	}()

	window.Render(timerDriver.Snapshot())
	window.Show()

	if settings.NotificationSound == "" {
		runFirstRunSetup(window, store, timerDriver)
	}

	fyneApp.Run()
}

func handleEvent(event driver.Event, window *mainwindow.Window, trayManager *tray.Manager) {
	window.Render(event.Snapshot)
	if trayManager != nil {
		trayManager.SetRun(event.Snapshot.Run)
		trayManager.SetStatus(event.Snapshot.Kind.DisplayName() + " " + mainwindow.FormatRemaining(event.Snapshot.Remaining))
	}
	if event.Type == driver.EventCompleted {
		window.ShowCompletion(event.Finished)
	}
}

func toggleTimer(timerDriver *driver.Driver) {
	switch timerDriver.Snapshot().Run {
	case session.StateRunning:
		timerDriver.Pause()
	case session.StatePaused:
		timerDriver.Resume()
	default:
		timerDriver.Start()
	}
}

// runFirstRunSetup offers to install a notification sound when none is
// configured yet. The pick is copied into the asset directory and persisted.
func runFirstRunSetup(window *mainwindow.Window, store *storage.Store, timerDriver *driver.Driver) {
	window.PromptSoundSetup(func(sourcePath string) {
		installedPath, err := store.InstallSound(sourcePath, storage.FirstRunSoundStem)
		if err != nil {
			window.ShowSoundError(err)
			return
		}
		updated := timerDriver.Settings()
		updated.NotificationSound = installedPath
		if err := store.Save(updated); err != nil {
			log.Printf("save settings: %v", err)
		}
		timerDriver.UpdateSettings(updated)
		window.ShowSoundInstalled(installedPath)
	})
}
