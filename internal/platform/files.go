package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	XDGOpenCommand  = "xdg-open"
	ExplorerCommand = "explorer"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ErrUnsupportedPlatform is returned when the OS has no known way to open folders
var ErrUnsupportedPlatform = errors.New("unsupported operating system")

// runCommand executes an external command and waits for it.
var runCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// startCommand launches an external command without waiting for it. Explorer
// exits with status 1 even when the window opened.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// lookPath reports whether an executable is available.
var lookPath = exec.LookPath

// Linux folder opening is off unless enabled from the command line
var linuxOpening atomic.Bool

// SetLinuxFolderOpening enables xdg-open and file manager fallbacks on Linux
func SetLinuxFolderOpening(enabled bool) {
	linuxOpening.Store(enabled)
}

// LinuxFolderOpening reports whether folders are opened on Linux
func LinuxFolderOpening() bool {
	return linuxOpening.Load()
}

// OpenContainingFolder opens the directory that holds filePath in the system file manager
func OpenContainingFolder(filePath string) error {
	if strings.TrimSpace(filePath) == "" {
		return fmt.Errorf("file path is empty")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	return OpenDirectory(filepath.Dir(absPath))
}

// OpenDirectory opens dir in the system file manager
func OpenDirectory(dir string) error {
	return openDirectoryOn(runtime.GOOS, dir)
}

// FolderOpeningSupported reports whether OpenDirectory can open folders on this OS
func FolderOpeningSupported() bool {
	return folderOpeningSupportedOn(runtime.GOOS)
}

func folderOpeningSupportedOn(goos string) bool {
	switch goos {
	case OSDarwin, OSWindows:
		return true
	case OSLinux:
		return linuxOpening.Load()
	default:
		return false
	}
}

func openDirectoryOn(goos, dir string) error {
	switch goos {
	case OSDarwin: // macOS
		return runCommand(OpenCommand, dir)
	case OSWindows:
		return startCommand(ExplorerCommand, dir)
	case OSLinux:
		if linuxOpening.Load() {
			return openDirectoryLinux(dir)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
}

// openDirectoryLinux tries xdg-open first and then well known file managers
func openDirectoryLinux(dir string) error {
	if err := runCommand(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := lookPath(fm); err == nil {
			return runCommand(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
