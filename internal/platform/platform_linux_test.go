//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutostart_DesktopEntryLifecycle(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	d := NewDesktop()

	enabled, err := d.AutostartEnabled("Pomotick")
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, d.EnableAutostart("Pomotick", "/usr/local/bin/pomotick", "--log-level", "warn"))

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "autostart", "pomotick.desktop")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Name=Pomotick\n")
	assert.Contains(t, string(content), "Exec=/usr/local/bin/pomotick --log-level warn\n")

	enabled, err = d.AutostartEnabled("Pomotick")
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, d.DisableAutostart("Pomotick"))
	require.NoError(t, d.DisableAutostart("Pomotick"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigDir_UsesXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := NewDesktop().ConfigDir("Pomotick")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "pomotick"), dir)
}

func TestFindKeycode(t *testing.T) {
	keysyms := []xproto.Keysym{
		0x61, 0x41,
		0x62, 0x42,
		keysymAudioPlay, 0,
	}

	assert.Equal(t, xproto.Keycode(10), findKeycode(keysyms, 2, 8, keysymAudioPlay))
	assert.Equal(t, xproto.Keycode(0), findKeycode(keysyms, 2, 8, 0x1008ff15))
	assert.Equal(t, xproto.Keycode(0), findKeycode(keysyms, 0, 8, keysymAudioPlay))
}

func TestParseIdleMillis(t *testing.T) {
	idle, err := parseIdleMillis("1500\n")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, idle)

	idle, err = parseIdleMillis("-3")
	require.NoError(t, err)
	assert.Zero(t, idle)

	_, err = parseIdleMillis("idle")
	assert.Error(t, err)
}
