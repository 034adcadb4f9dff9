package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"pomotick/internal/storage"
)

const (
	// AppName is the display name and the per-user directory name.
	AppName = "Pomotick"
	// AppID identifies the application to fyne.
	AppID = "io.pomotick.app"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
}

// DefaultConfigPath returns the options file inside the user config directory.
func DefaultConfigPath() string {
	path, err := storage.DefaultOptionsPath("pomotick")
	if err != nil {
		return storage.OptionsFileName
	}
	return path
}

// DefaultDataDir returns the data directory using XDG_DATA_HOME, or the
// platform equivalent.
func DefaultDataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "pomotick")
	}

	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "pomotick")
	case "windows":
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			return filepath.Join(local, "pomotick")
		}
		return filepath.Join(home, "AppData", "Local", "pomotick")
	default:
		return filepath.Join(home, ".local", "share", "pomotick")
	}
}
