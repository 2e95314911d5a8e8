package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/asset-standardizer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	// UI components
	autoOpenCheck *widget.Check
	langFileEntry *widget.Entry
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.autoOpenCheck = widget.NewCheck(sd.localization.GetText(KeyAutoOpenFolder), nil)

	// The language file is chosen on the command line; shown for reference only
	sd.langFileEntry = widget.NewEntry()
	sd.langFileEntry.Disable()

	form := container.NewVBox(
		sd.autoOpenCheck,
		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyLanguageFile)+LabelSuffix),
		sd.langFileEntry,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(DialogMinWidth+80, form.MinSize().Height*2))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.autoOpenCheck.SetChecked(sd.settings.GetAutoOpenFolder())
	sd.langFileEntry.SetText(sd.settings.LanguageFilePath())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAutoOpenFolder(sd.autoOpenCheck.Checked)
}
