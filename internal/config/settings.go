package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/asset-standardizer/internal/model"
	"github.com/ytget/asset-standardizer/internal/platform"
)

// DefaultLanguageFile is resolved against the working directory
const DefaultLanguageFile = "last_language.txt"

// Settings keys for Fyne preferences
const (
	KeyAutoOpenFolder = "auto_open_folder"
	KeyLastDirectory  = "last_directory"
)

// Default values
const (
	DefaultAutoOpenFolder = true
)

// LanguageStore persists the last chosen interface language
type LanguageStore interface {
	Load() (string, error)
	Save(code string) error
}

// FileLanguageStore keeps the language code as the whole content of a text file
type FileLanguageStore struct {
	path string
}

// NewFileLanguageStore creates a store backed by path
func NewFileLanguageStore(path string) *FileLanguageStore {
	if path == "" {
		path = DefaultLanguageFile
	}
	return &FileLanguageStore{path: path}
}

// Path returns the location of the language file
func (s *FileLanguageStore) Path() string {
	return s.path
}

// Load returns the raw file content
func (s *FileLanguageStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read language file: %w", err)
	}
	return string(data), nil
}

// Save overwrites the file with code
func (s *FileLanguageStore) Save(code string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to create language file directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(code), platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write language file: %w", err)
	}
	return nil
}

// Settings manages application configuration
type Settings struct {
	app    fyne.App
	store  LanguageStore
	detect func() model.Language
}

// NewSettings creates a new settings manager. app may be nil when running
// without a GUI; preference backed values then report their defaults.
func NewSettings(app fyne.App, store LanguageStore, detect func() model.Language) *Settings {
	if detect == nil {
		detect = platform.DetectSystemLanguage
	}
	return &Settings{app: app, store: store, detect: detect}
}

// LoadLanguage returns the saved language, or the detected one when the file is
// missing or holds anything unexpected
func (s *Settings) LoadLanguage() model.Language {
	if s.store != nil {
		raw, err := s.store.Load()
		if err == nil {
			if lang, ok := model.ParseLanguage(raw); ok {
				return lang
			}
		}
	}
	return s.DetectLanguage()
}

// DetectLanguage returns the language derived from the OS locale
func (s *Settings) DetectLanguage() model.Language {
	lang := s.detect()
	if !lang.IsValid() {
		return model.DefaultLanguage
	}
	return lang
}

// SaveLanguage persists lang
func (s *Settings) SaveLanguage(lang model.Language) error {
	if !lang.IsValid() {
		return fmt.Errorf("unsupported language: %q", lang)
	}
	if s.store == nil {
		return fmt.Errorf("no language store configured")
	}
	if err := s.store.Save(lang.String()); err != nil {
		return err
	}
	log.Printf("Language saved: %s", lang)
	return nil
}

// GetAutoOpenFolder returns whether to open the containing folder after processing
func (s *Settings) GetAutoOpenFolder() bool {
	if s.app == nil {
		return DefaultAutoOpenFolder
	}
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenFolder, DefaultAutoOpenFolder)
}

// SetAutoOpenFolder sets whether to open the containing folder after processing
func (s *Settings) SetAutoOpenFolder(open bool) {
	if s.app == nil {
		return
	}
	s.app.Preferences().SetBool(KeyAutoOpenFolder, open)
}

// GetLastDirectory returns the directory of the previously selected file
func (s *Settings) GetLastDirectory() string {
	if s.app == nil {
		return ""
	}
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory remembers where the file chooser should start next time
func (s *Settings) SetLastDirectory(dir string) {
	if s.app == nil {
		return
	}
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// LanguageFilePath returns the language file location when the store is file based
func (s *Settings) LanguageFilePath() string {
	if fs, ok := s.store.(*FileLanguageStore); ok {
		return fs.Path()
	}
	return ""
}
