package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/asset-standardizer/internal/config"
	"github.com/ytget/asset-standardizer/internal/model"
	"github.com/ytget/asset-standardizer/internal/platform"
	"github.com/ytget/asset-standardizer/internal/process"
)

// FolderOpener reveals the folder that contains a file
type FolderOpener func(filePath string) error

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	processor    process.Processor
	dialogs      Dialogs
	openFolder   FolderOpener

	// Reports whether openFolder can do anything on this machine
	canOpenFolder func() bool

	// Set by the file chooser, read when a run starts
	filePath string

	languageLabel  *widget.Label
	languageSelect *widget.Select
	selectBtn      *widget.Button
	startBtn       *widget.Button
	settingsBtn    *widget.Button
	progressLabel  *widget.Label
	progressBar    *widget.ProgressBar
	percentLabel   *widget.Label

	progress    binding.Float
	percentText binding.String
}

// NewRootUI creates and initializes the main UI. nil dialogs or openFolder select
// the Fyne dialogs of window and the platform folder opener.
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, processor process.Processor, dialogs Dialogs, openFolder FolderOpener) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.LoadLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		settings:     settings,
		localization: localization,
		processor:    processor,
		dialogs:      dialogs,
		openFolder:   openFolder,
		progress:     binding.NewFloat(),
		percentText:  binding.NewString(),
	}

	if ui.dialogs == nil {
		ui.dialogs = NewWindowDialogs(window,
			func() string { return ui.localization.GetText(KeyOK) },
			func() string { return ui.localization.GetText(KeySelectFile) },
		)
	}
	ui.canOpenFolder = func() bool { return true }
	if ui.openFolder == nil {
		ui.openFolder = platform.OpenContainingFolder
		ui.canOpenFolder = platform.FolderOpeningSupported
	}

	ui.setupUI()
	log.Printf("UI initialized with language %s", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Language row
	ui.languageLabel = widget.NewLabel("")
	labels := make([]string, 0, len(languageOptions))
	for _, opt := range ui.localization.GetAvailableLanguages() {
		labels = append(labels, opt.Label)
	}
	ui.languageSelect = widget.NewSelect(labels, nil)
	ui.languageSelect.SetSelected(ui.localization.LabelForLanguage(ui.localization.GetCurrentLanguage()))
	// Assigned after the initial selection so startup does not rewrite the file
	ui.languageSelect.OnChanged = ui.onLanguageChange

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	selectWrap := container.NewGridWrap(fyne.NewSize(LanguageSelectMinW, ui.languageSelect.MinSize().Height), ui.languageSelect)
	topPanel := container.NewHBox(ui.languageLabel, selectWrap, layout.NewSpacer(), ui.settingsBtn)

	// Action buttons
	ui.selectBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), ui.onSelectFile)
	ui.startBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance

	buttonSize := fyne.NewSize(ActionButtonWidth, ActionButtonHeight)
	buttons := container.NewVBox(
		container.NewCenter(container.NewGridWrap(buttonSize, ui.selectBtn)),
		container.NewCenter(container.NewGridWrap(buttonSize, ui.startBtn)),
	)

	// Progress bar with the percentage drawn over its center
	ui.progressLabel = widget.NewLabel("")
	ui.progressBar = widget.NewProgressBarWithData(ui.progress)
	ui.progressBar.Min = ProgressMin
	ui.progressBar.Max = ProgressMax
	ui.progressBar.TextFormatter = func() string { return "" }

	ui.percentLabel = widget.NewLabelWithData(ui.percentText)
	ui.percentLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.setProgress(0)

	progressPanel := container.NewVBox(
		ui.progressLabel,
		container.NewStack(ui.progressBar, container.NewCenter(ui.percentLabel)),
	)

	body := container.NewVBox(layout.NewSpacer(), buttons, layout.NewSpacer(), progressPanel, layout.NewSpacer())

	// Transparent rectangle keeps the window from shrinking below the minimum size
	minSize := canvas.NewRectangle(color.Transparent)
	minSize.SetMinSize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	content := container.NewStack(
		minSize,
		container.NewBorder(container.NewPadded(topPanel), nil, nil, nil, container.NewPadded(body)),
	)

	ui.refreshUITexts()
	ui.window.SetContent(content)
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyTitle))

	ui.languageLabel.SetText(ui.localization.GetText(KeySelectLanguage) + LabelSuffix)
	ui.selectBtn.SetText(ui.localization.GetText(KeySelectFile))
	ui.startBtn.SetText(ui.localization.GetText(KeyStart))
	ui.progressLabel.SetText(ui.localization.GetText(KeyProgress))
}

// onLanguageChange handles a selection in the language dropdown
func (ui *RootUI) onLanguageChange(label string) {
	lang := ui.localization.LanguageForLabel(label)

	if err := ui.settings.SaveLanguage(lang); err != nil {
		log.Printf("Failed to save language %s: %v", lang, err)
	}

	ui.localization.SetLanguage(lang)
	ui.refreshUITexts()
}

// onSelectFile opens the file chooser and remembers the chosen file
func (ui *RootUI) onSelectFile() {
	ui.dialogs.ChooseFile(ui.settings.GetLastDirectory(), func(path string) {
		if path == "" {
			return
		}

		ui.filePath = path
		ui.settings.SetLastDirectory(filepath.Dir(path))
		log.Printf("File selected: %s", path)

		ui.dialogs.ShowInfo(
			ui.localization.GetText(KeyTitle),
			fmt.Sprintf(FileSelectedFormat, ui.localization.GetText(KeySelectFile), path),
		)
	})
}

// onStartClick handles the start button click
func (ui *RootUI) onStartClick() {
	if ui.filePath == "" {
		ui.dialogs.ShowWarning(ui.localization.GetText(KeyTitle), ui.localization.GetText(KeySelectFile))
		return
	}

	ui.startBtn.Disable()

	filePath := ui.filePath
	task, events, err := ui.processor.Start(ui.ctx, filePath)
	if err != nil {
		log.Printf("Failed to start processing %s: %v", filePath, err)
		// A busy processor re-enables the button when its own run ends
		if !errors.Is(err, process.ErrBusy) {
			ui.startBtn.Enable()
		}
		return
	}

	log.Printf("Processing task %s started", task.ID)
	go ui.consumeProgress(filePath, events)
}

// consumeProgress renders worker events until the run ends
func (ui *RootUI) consumeProgress(filePath string, events <-chan model.ProgressEvent) {
	var final model.ProgressEvent
	for ev := range events {
		if ev.Done() {
			final = ev
			continue
		}
		percent := ev.Percent
		fyne.Do(func() {
			ui.setProgress(percent)
		})
	}

	completed := final.Status == model.TaskStatusCompleted

	fyne.Do(func() {
		ui.startBtn.Enable()
		if !completed {
			return
		}

		open := ui.settings.GetAutoOpenFolder() && ui.canOpenFolder()
		doneKey := KeyDoneNoOpen
		if open {
			doneKey = KeyDone
		}
		ui.dialogs.ShowInfo(ui.localization.GetText(KeyTitle), ui.localization.GetText(doneKey))

		if open {
			go ui.revealFolder(filePath)
		}
	})
}

// revealFolder opens the folder that contains filePath
func (ui *RootUI) revealFolder(filePath string) {
	if err := ui.openFolder(filePath); err != nil && !errors.Is(err, platform.ErrUnsupportedPlatform) {
		log.Printf("Failed to open folder for %s: %v", filePath, err)
	}
}

// setProgress updates the bar and the percentage label
func (ui *RootUI) setProgress(percent int) {
	_ = ui.progress.Set(float64(percent))
	_ = ui.percentText.Set(fmt.Sprintf(ProgressLabelFormat, percent))
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window).Show()
}

// SelectedFile returns the file chosen by the user, or "" if none
func (ui *RootUI) SelectedFile() string {
	return ui.filePath
}
