package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Desktop exposes the OS session helpers used by the application.
type Desktop interface {
	ConfigDir(appName string) (string, error)
	EnableAutostart(appName, execPath string, args ...string) error
	DisableAutostart(appName string) error
	AutostartEnabled(appName string) (bool, error)
}

type desktop struct{}

// NewDesktop returns the implementation for the running OS.
func NewDesktop() Desktop {
	return desktop{}
}

// ConfigDir returns the per-user configuration directory for appName.
func (desktop) ConfigDir(appName string) (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, slug(appName)), nil
}

func userConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return fallbackConfigDir(homeDir), nil
}

// slug turns an application name into a file-system friendly identifier.
func slug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		name = "pomotick"
	}
	return strings.Join(strings.Fields(name), "-")
}

func quoteArg(arg string) string {
	if arg == "" || strings.ContainsAny(arg, " \t\"") {
		return `"` + strings.ReplaceAll(strings.Trim(arg, `"`), `"`, `\"`) + `"`
	}
	return arg
}

func commandLine(execPath string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(execPath))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func validateAutostart(appName, execPath string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("app name is empty")
	}
	if strings.TrimSpace(execPath) == "" {
		return fmt.Errorf("exec path is empty")
	}
	return nil
}
