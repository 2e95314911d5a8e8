package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Dialogs shows the modal interactions of the main window
type Dialogs interface {
	ShowInfo(title, message string)
	ShowWarning(title, message string)
	// ChooseFile opens a file chooser; onChosen receives "" when the user cancels
	ChooseFile(startDir string, onChosen func(path string))
}

// windowDialogs renders Dialogs with Fyne dialogs on a window
type windowDialogs struct {
	window     fyne.Window
	dismissTxt func() string
	confirmTxt func() string
}

// NewWindowDialogs creates Dialogs bound to window. The button text callbacks are
// evaluated on every call so they follow the active language.
func NewWindowDialogs(window fyne.Window, dismissText, confirmText func() string) Dialogs {
	return &windowDialogs{window: window, dismissTxt: dismissText, confirmTxt: confirmText}
}

// ShowInfo shows an information dialog
func (d *windowDialogs) ShowInfo(title, message string) {
	info := dialog.NewInformation(title, message, d.window)
	if d.dismissTxt != nil {
		info.SetDismissText(d.dismissTxt())
	}
	info.Show()
}

// ShowWarning shows a dialog with a warning icon
func (d *windowDialogs) ShowWarning(title, message string) {
	dismiss := "OK"
	if d.dismissTxt != nil {
		dismiss = d.dismissTxt()
	}

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	content := container.NewBorder(nil, nil, widget.NewIcon(theme.WarningIcon()), nil, label)

	warning := dialog.NewCustom(title, dismiss, content, d.window)
	warning.Resize(fyne.NewSize(DialogMinWidth, warning.MinSize().Height))
	warning.Show()
}

// ChooseFile shows the Fyne file open dialog without filters
func (d *windowDialogs) ChooseFile(startDir string, onChosen func(path string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File dialog error: %v", err)
			onChosen("")
			return
		}
		if reader == nil {
			onChosen("")
			return
		}
		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			log.Printf("Failed to close %s: %v", path, cerr)
		}
		onChosen(path)
	}, d.window)

	if d.confirmTxt != nil {
		fileDialog.SetConfirmText(d.confirmTxt())
	}
	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			fileDialog.SetLocation(lister)
		}
	}

	fileDialog.Resize(fyne.NewSize(FileDialogWidth, FileDialogHeight))
	fileDialog.Show()
}
