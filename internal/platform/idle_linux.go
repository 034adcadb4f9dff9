//go:build linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"pomotick/internal/core/inactivity"
)

// idleProvider asks the X server screensaver extension, falling back to xprintidle.
type idleProvider struct {
	xprintidle string
}

func newIdleProvider() IdleProvider {
	path, _ := exec.LookPath("xprintidle")
	return &idleProvider{xprintidle: path}
}

func (provider *idleProvider) IdleDuration() (time.Duration, error) {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") && provider.xprintidle == "" {
		return 0, inactivity.ErrIdleUnsupported
	}

	var (
		millis   uint32
		answered bool
	)
	err := withX11(func(client *x11Client) error {
		if !client.screensaver {
			return nil
		}
		value, err := client.idle()
		if err != nil {
			return err
		}
		millis, answered = value, true
		return nil
	})
	if answered {
		return time.Duration(millis) * time.Millisecond, nil
	}

	if provider.xprintidle == "" {
		if err != nil {
			return 0, fmt.Errorf("query X idle time: %w", err)
		}
		return 0, inactivity.ErrIdleUnsupported
	}
	return provider.fromXprintidle()
}

func (provider *idleProvider) fromXprintidle() (time.Duration, error) {
	output, err := exec.Command(provider.xprintidle).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", err)
	}
	return parseIdleMillis(string(output))
}

func parseIdleMillis(value string) (time.Duration, error) {
	millis, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if millis < 0 {
		millis = 0
	}
	return time.Duration(millis) * time.Millisecond, nil
}
