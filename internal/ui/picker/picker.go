// Package picker opens the audio-file selection dialog.
package picker

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
)

// ShowSoundFile opens a wav/mp3 file picker starting at the user's home
// directory. onPick receives the selected path; cancelling the dialog calls
// nothing.
func ShowSoundFile(parent fyne.Window, onPick func(sourcePath string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, parent)
			return
		}
		if reader == nil {
			return
		}
		sourcePath := reader.URI().Path()
		_ = reader.Close()
		onPick(sourcePath)
	}, parent)

	fileDialog.SetFilter(fynestorage.NewExtensionFileFilter([]string{".wav", ".mp3"}))
	if home, err := os.UserHomeDir(); err == nil {
		if lister, err := fynestorage.ListerForURI(fynestorage.NewFileURI(home)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}
	fileDialog.Show()
}
