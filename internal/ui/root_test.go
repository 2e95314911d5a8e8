package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/asset-standardizer/internal/config"
	"github.com/ytget/asset-standardizer/internal/model"
	"github.com/ytget/asset-standardizer/internal/process"
)

const waitTimeout = 10 * time.Second

type shownDialog struct {
	title   string
	message string
}

// eventLog records the order of dialogs and folder openings
type eventLog struct {
	mu      sync.Mutex
	entries []string
}

func (l *eventLog) add(entry string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
}

func (l *eventLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.entries...)
}

// fakeDialogs records dialogs instead of drawing them
type fakeDialogs struct {
	mu       sync.Mutex
	infos    []shownDialog
	warnings []shownDialog
	chosen   string
	infoCh   chan shownDialog
	log      *eventLog
}

func newFakeDialogs(log *eventLog) *fakeDialogs {
	return &fakeDialogs{infoCh: make(chan shownDialog, 16), log: log}
}

func (d *fakeDialogs) ShowInfo(title, message string) {
	d.mu.Lock()
	d.infos = append(d.infos, shownDialog{title, message})
	d.mu.Unlock()
	d.log.add("info: " + message)
	d.infoCh <- shownDialog{title, message}
}

func (d *fakeDialogs) ShowWarning(title, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings = append(d.warnings, shownDialog{title, message})
}

func (d *fakeDialogs) ChooseFile(_ string, onChosen func(path string)) {
	onChosen(d.chosen)
}

func (d *fakeDialogs) snapshot() (infos, warnings []shownDialog) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]shownDialog(nil), d.infos...), append([]shownDialog(nil), d.warnings...)
}

func (d *fakeDialogs) waitInfo(t *testing.T) shownDialog {
	t.Helper()
	select {
	case info := <-d.infoCh:
		return info
	case <-time.After(waitTimeout):
		t.Fatal("Timed out waiting for an information dialog")
	}
	return shownDialog{}
}

// spyProcessor forwards to a real processor and records what the UI receives
type spyProcessor struct {
	process.Processor
	mu     sync.Mutex
	starts int
	events []model.ProgressEvent
	err    error
}

func (s *spyProcessor) Start(ctx context.Context, filePath string) (model.ProcessingTask, <-chan model.ProgressEvent, error) {
	s.mu.Lock()
	s.starts++
	s.mu.Unlock()

	if s.err != nil {
		return model.ProcessingTask{}, nil, s.err
	}

	task, in, err := s.Processor.Start(ctx, filePath)
	if err != nil {
		return task, nil, err
	}

	out := make(chan model.ProgressEvent, model.MaxPercent+2)
	go func() {
		defer close(out)
		for ev := range in {
			s.mu.Lock()
			s.events = append(s.events, ev)
			s.mu.Unlock()
			out <- ev
		}
	}()
	return task, out, nil
}

func (s *spyProcessor) startCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.starts
}

func (s *spyProcessor) recorded() []model.ProgressEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ProgressEvent(nil), s.events...)
}

// memoryStore is a LanguageStore kept in memory
type memoryStore struct {
	mu    sync.Mutex
	value string
	saves int
}

func (m *memoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == "" {
		return "", errors.New("not saved")
	}
	return m.value, nil
}

func (m *memoryStore) Save(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = code
	m.saves++
	return nil
}

// folderRecorder is a FolderOpener that remembers its calls
type folderRecorder struct {
	calls chan string
	log   *eventLog
}

func newFolderRecorder(log *eventLog) *folderRecorder {
	return &folderRecorder{calls: make(chan string, 4), log: log}
}

func (f *folderRecorder) open(filePath string) error {
	f.log.add("open: " + filePath)
	f.calls <- filePath
	return nil
}

func (f *folderRecorder) wait(t *testing.T) string {
	t.Helper()
	select {
	case opened := <-f.calls:
		return opened
	case <-time.After(waitTimeout):
		t.Fatal("Timed out waiting for the folder to be opened")
	}
	return ""
}

func (f *folderRecorder) expectNone(t *testing.T) {
	t.Helper()
	select {
	case opened := <-f.calls:
		t.Errorf("Folder should not be opened, got %s", opened)
	case <-time.After(100 * time.Millisecond):
	}
}

type fixture struct {
	app       fyne.App
	window    fyne.Window
	ui        *RootUI
	dialogs   *fakeDialogs
	processor *spyProcessor
	store     *memoryStore
	folders   *folderRecorder
	settings  *config.Settings
	log       *eventLog
}

func newFixture(t *testing.T, savedLanguage string) *fixture {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(func() { app.Quit() })

	log := &eventLog{}
	f := &fixture{
		app:       app,
		window:    test.NewWindow(nil),
		dialogs:   newFakeDialogs(log),
		processor: &spyProcessor{Processor: process.NewService(time.Millisecond)},
		store:     &memoryStore{value: savedLanguage},
		folders:   newFolderRecorder(log),
		log:       log,
	}
	f.settings = config.NewSettings(app, f.store, func() model.Language { return model.LanguageEnglish })
	f.ui = NewRootUI(context.Background(), f.window, f.settings, f.processor, f.dialogs, f.folders.open)
	return f
}

func TestNewRootUI_UsesSavedLanguage(t *testing.T) {
	f := newFixture(t, "zh")

	if got := f.window.Title(); got != "固定资产文件标准化处理工具" {
		t.Errorf("Expected Chinese title, got %q", got)
	}
	if f.ui.languageSelect.Selected != "中文" {
		t.Errorf("Expected selector to show 中文, got %q", f.ui.languageSelect.Selected)
	}
	if f.ui.startBtn.Text != "开始处理" {
		t.Errorf("Unexpected start button text %q", f.ui.startBtn.Text)
	}
	if f.store.saves != 0 {
		t.Errorf("Startup should not write the language file, got %d saves", f.store.saves)
	}
	if text, _ := f.ui.percentText.Get(); text != "0%" {
		t.Errorf("Expected initial percentage 0%%, got %q", text)
	}
}

func TestNewRootUI_FallsBackToDetectedLanguage(t *testing.T) {
	f := newFixture(t, "")

	if got := f.window.Title(); got != "Fixed Asset File Standardization Tool" {
		t.Errorf("Expected English title, got %q", got)
	}
}

func TestStart_WithoutFileShowsWarning(t *testing.T) {
	f := newFixture(t, "en")

	test.Tap(f.ui.startBtn)

	_, warnings := f.dialogs.snapshot()
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].title != "Fixed Asset File Standardization Tool" || warnings[0].message != "Select File" {
		t.Errorf("Unexpected warning %+v", warnings[0])
	}
	if f.processor.startCount() != 0 {
		t.Error("Processor should not be started without a file")
	}
	if f.ui.startBtn.Disabled() {
		t.Error("Start button should stay enabled")
	}
	if value, _ := f.ui.progress.Get(); value != 0 {
		t.Errorf("Progress should stay 0, got %v", value)
	}
}

func TestSelectFile_Cancelled(t *testing.T) {
	f := newFixture(t, "en")
	f.dialogs.chosen = ""

	test.Tap(f.ui.selectBtn)

	if f.ui.SelectedFile() != "" {
		t.Errorf("Expected no selected file, got %s", f.ui.SelectedFile())
	}
	if infos, _ := f.dialogs.snapshot(); len(infos) != 0 {
		t.Errorf("Cancel should not show dialogs, got %d", len(infos))
	}
}

func TestSelectFile_Chosen(t *testing.T) {
	f := newFixture(t, "en")
	path := filepath.Join(t.TempDir(), "assets.xlsx")
	f.dialogs.chosen = path

	test.Tap(f.ui.selectBtn)

	if f.ui.SelectedFile() != path {
		t.Errorf("Expected selected file %s, got %s", path, f.ui.SelectedFile())
	}

	info := f.dialogs.waitInfo(t)
	expected := fmt.Sprintf("Select File: %s", path)
	if info.message != expected {
		t.Errorf("Expected confirmation %q, got %q", expected, info.message)
	}
	if dir := f.settings.GetLastDirectory(); dir != filepath.Dir(path) {
		t.Errorf("Expected last directory %s, got %s", filepath.Dir(path), dir)
	}
}

func TestStart_WithFileRunsToCompletion(t *testing.T) {
	f := newFixture(t, "en")
	path := filepath.Join(t.TempDir(), "assets.xlsx")
	f.dialogs.chosen = path
	test.Tap(f.ui.selectBtn)
	f.dialogs.waitInfo(t) // file confirmation

	test.Tap(f.ui.startBtn)
	if !f.ui.startBtn.Disabled() {
		t.Error("Start button should be disabled while processing")
	}

	done := f.dialogs.waitInfo(t)
	if done.message != "Processing complete! Folder opened." {
		t.Errorf("Unexpected completion message %q", done.message)
	}

	if opened := f.folders.wait(t); opened != path {
		t.Errorf("Expected folder of %s to be opened, got %s", path, opened)
	}

	// The completion dialog comes before the folder opens
	entries := f.log.snapshot()
	expectedTail := []string{"info: " + done.message, "open: " + path}
	if len(entries) < 2 || entries[len(entries)-2] != expectedTail[0] || entries[len(entries)-1] != expectedTail[1] {
		t.Errorf("Expected events to end with %q, got %q", expectedTail, entries)
	}

	if f.ui.startBtn.Disabled() {
		t.Error("Start button should be enabled after completion")
	}
	if value, _ := f.ui.progress.Get(); value != 100 {
		t.Errorf("Expected progress 100, got %v", value)
	}
	if text, _ := f.ui.percentText.Get(); text != "100%" {
		t.Errorf("Expected label 100%%, got %q", text)
	}

	infos, _ := f.dialogs.snapshot()
	completions := 0
	for _, info := range infos {
		if info.message == done.message {
			completions++
		}
	}
	if completions != 1 {
		t.Errorf("Expected exactly 1 completion dialog, got %d", completions)
	}

	// Progress reached the UI in unit steps from 0 to 100
	percent := 0
	for _, ev := range f.processor.recorded() {
		if ev.Done() {
			continue
		}
		if ev.Percent != percent {
			t.Fatalf("Expected percent %d, got %d", percent, ev.Percent)
		}
		percent++
	}
	if percent != model.MaxPercent+1 {
		t.Errorf("Expected %d progress steps, got %d", model.MaxPercent+1, percent)
	}
}

func TestStart_AutoOpenDisabled(t *testing.T) {
	f := newFixture(t, "en")
	f.settings.SetAutoOpenFolder(false)
	f.dialogs.chosen = filepath.Join(t.TempDir(), "assets.xlsx")
	test.Tap(f.ui.selectBtn)
	f.dialogs.waitInfo(t)

	test.Tap(f.ui.startBtn)
	done := f.dialogs.waitInfo(t)
	if done.message != "Processing complete!" {
		t.Errorf("Expected completion message without folder, got %q", done.message)
	}

	f.folders.expectNone(t)
}

func TestStart_FolderOpeningUnsupported(t *testing.T) {
	f := newFixture(t, "zh")
	f.ui.canOpenFolder = func() bool { return false }
	f.dialogs.chosen = filepath.Join(t.TempDir(), "assets.xlsx")
	test.Tap(f.ui.selectBtn)
	f.dialogs.waitInfo(t)

	test.Tap(f.ui.startBtn)
	done := f.dialogs.waitInfo(t)
	if done.message != "处理完成！" {
		t.Errorf("Expected completion message without folder, got %q", done.message)
	}

	f.folders.expectNone(t)
}

func TestStart_ProcessorErrors(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedEnabled bool
	}{
		{"busy", fmt.Errorf("%w: process-1", process.ErrBusy), false},
		{"other", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, "en")
			f.processor.err = tt.err
			f.dialogs.chosen = "/data/assets.xlsx"
			test.Tap(f.ui.selectBtn)

			test.Tap(f.ui.startBtn)

			if f.processor.startCount() != 1 {
				t.Errorf("Expected 1 start attempt, got %d", f.processor.startCount())
			}
			if enabled := !f.ui.startBtn.Disabled(); enabled != tt.expectedEnabled {
				t.Errorf("Expected start enabled=%v, got %v", tt.expectedEnabled, enabled)
			}
		})
	}
}

func TestLanguageChange(t *testing.T) {
	f := newFixture(t, "zh")

	tests := []struct {
		label    string
		expected model.Language
	}{
		{"English", model.LanguageEnglish},
		{"ᠮᠣᠩᠭᠣᠯ", model.LanguageMongolian},
		{"中文", model.LanguageChinese},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			f.ui.languageSelect.SetSelected(tt.label)

			if f.store.value != tt.expected.String() {
				t.Errorf("Expected saved language %s, got %s", tt.expected, f.store.value)
			}

			title := f.ui.localization.GetTextFor(tt.expected, KeyTitle)
			if f.window.Title() != title {
				t.Errorf("Expected title %q, got %q", title, f.window.Title())
			}
			if f.ui.selectBtn.Text != f.ui.localization.GetTextFor(tt.expected, KeySelectFile) {
				t.Errorf("Select button not relabelled: %q", f.ui.selectBtn.Text)
			}
			if f.ui.languageLabel.Text != f.ui.localization.GetTextFor(tt.expected, KeySelectLanguage)+LabelSuffix {
				t.Errorf("Language label not relabelled: %q", f.ui.languageLabel.Text)
			}
		})
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	f := newFixture(t, "en")

	sd := NewSettingsDialog(f.settings, f.ui.localization, f.window)
	sd.loadCurrentSettings()
	if !sd.autoOpenCheck.Checked {
		t.Error("Expected auto open to be checked by default")
	}

	sd.autoOpenCheck.SetChecked(false)
	sd.onSave(false)
	if !f.settings.GetAutoOpenFolder() {
		t.Error("Cancel should not change the setting")
	}

	sd.onSave(true)
	if f.settings.GetAutoOpenFolder() {
		t.Error("Save should disable auto open")
	}
}
