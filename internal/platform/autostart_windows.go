//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (d desktop) EnableAutostart(appName, execPath string, args ...string) error {
	if err := validateAutostart(appName, execPath); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}

	value := `"` + strings.Trim(execPath, `"`) + `"`
	for _, arg := range args {
		value += " " + quoteArg(arg)
	}
	if err := reg("add", runKey, "/v", appName, "/t", "REG_SZ", "/d", value, "/f"); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (d desktop) DisableAutostart(appName string) error {
	if err := reg("delete", runKey, "/v", appName, "/f"); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func (d desktop) AutostartEnabled(appName string) (bool, error) {
	if err := reg("query", runKey, "/v", appName); err != nil {
		return false, nil
	}
	return true, nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func reg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
