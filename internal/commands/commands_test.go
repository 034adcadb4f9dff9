package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"pomotick/internal/storage/history"
)

type desktopStub struct {
	enabled  bool
	execPath string
	args     []string
}

func (stub *desktopStub) ConfigDir(appName string) (string, error) { return "", nil }

func (stub *desktopStub) EnableAutostart(appName, execPath string, args ...string) error {
	stub.enabled = true
	stub.execPath = execPath
	stub.args = args
	return nil
}

func (stub *desktopStub) DisableAutostart(appName string) error {
	stub.enabled = false
	return nil
}

func (stub *desktopStub) AutostartEnabled(appName string) (bool, error) {
	return stub.enabled, nil
}

func newRoot(flags *Flags, out *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:   "pomotick",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data-dir", Value: DefaultDataDir(), Destination: &flags.DataDir},
			&cli.StringFlag{Name: "config", Value: DefaultConfigPath(), Destination: &flags.ConfigPath},
		},
	}
}

func TestHistoryCmd_PrintsSummary(t *testing.T) {
	dataDir := t.TempDir()
	db, err := history.Open(filepath.Join(dataDir, history.FileName))
	require.NoError(t, err)
	repo := history.NewRepository(db)
	now := time.Now()
	for _, record := range []history.IntervalRecord{
		{State: "working", Cause: "expired", PlannedSeconds: 1500, ActiveSeconds: 1500, StartedAt: now.Add(-2 * time.Hour), EndedAt: now.Add(-95 * time.Minute)},
		{State: "rest", Cause: "expired", PlannedSeconds: 300, ActiveSeconds: 300, StartedAt: now.Add(-95 * time.Minute), EndedAt: now.Add(-90 * time.Minute)},
		{State: "working", Cause: "expired", PlannedSeconds: 1500, ActiveSeconds: 1500, StartedAt: now.AddDate(0, 0, -30), EndedAt: now.AddDate(0, 0, -30)},
	} {
		require.NoError(t, repo.Insert(context.Background(), &record))
	}
	require.NoError(t, db.Close())

	flags := &Flags{}
	var out bytes.Buffer
	root := NewHistoryCmd(flags).Register(newRoot(flags, &out))

	require.NoError(t, root.Run(context.Background(), []string{"pomotick", "--data-dir", dataDir, "history", "--days", "7"}))

	assert.Contains(t, out.String(), "STATE")
	assert.Regexp(t, `rest\s+1\s+5m0s`, out.String())
	assert.Regexp(t, `working\s+1\s+25m0s`, out.String())
}

func TestHistoryCmd_Empty(t *testing.T) {
	flags := &Flags{}
	var out bytes.Buffer
	root := NewHistoryCmd(flags).Register(newRoot(flags, &out))

	require.NoError(t, root.Run(context.Background(), []string{"pomotick", "--data-dir", t.TempDir(), "history"}))

	assert.Equal(t, "No intervals recorded in the last 7 day(s)\n", out.String())
}

func TestAutostartCmd(t *testing.T) {
	flags := &Flags{}
	stub := &desktopStub{}
	var out bytes.Buffer
	dataDir := t.TempDir()
	newApp := func() *cli.Command {
		return NewAutostartCmd(flags, stub).Register(newRoot(flags, &out))
	}

	require.NoError(t, newApp().Run(context.Background(), []string{"pomotick", "--data-dir", dataDir, "autostart", "enable"}))
	assert.True(t, stub.enabled)
	assert.NotEmpty(t, stub.execPath)
	assert.Equal(t, []string{"--data-dir", dataDir}, stub.args)

	require.NoError(t, newApp().Run(context.Background(), []string{"pomotick", "autostart", "status"}))
	require.NoError(t, newApp().Run(context.Background(), []string{"pomotick", "autostart", "disable"}))
	assert.False(t, stub.enabled)

	assert.Equal(t, "Autostart enabled\nAutostart enabled\nAutostart disabled\n", out.String())
}

func TestDefaultDataDir_RespectsXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)

	assert.Equal(t, filepath.Join(base, "pomotick"), DefaultDataDir())
}
