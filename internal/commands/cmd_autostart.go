package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"pomotick/internal/platform"
)

// AutostartCmd manages the login entry that starts the timer.
type AutostartCmd struct {
	flags   *Flags
	desktop platform.Desktop
}

// NewAutostartCmd creates the autostart command
func NewAutostartCmd(flags *Flags, desktop platform.Desktop) *AutostartCmd {
	return &AutostartCmd{flags: flags, desktop: desktop}
}

// Register adds the autostart command to the application
func (cmd *AutostartCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "autostart",
		Usage: "Start pomotick when you log in",
		Commands: []*cli.Command{
			{Name: "enable", Usage: "register pomotick to run at login", Action: cmd.enable},
			{Name: "disable", Usage: "remove the login entry", Action: cmd.disable},
			{Name: "status", Usage: "report whether the login entry exists", Action: cmd.status},
		},
	})

	return app
}

func (cmd *AutostartCmd) enable(ctx context.Context, c *cli.Command) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	var args []string
	if cmd.flags.DataDir != DefaultDataDir() {
		args = append(args, "--data-dir", cmd.flags.DataDir)
	}
	if cmd.flags.ConfigPath != DefaultConfigPath() {
		args = append(args, "--config", cmd.flags.ConfigPath)
	}

	if err := cmd.desktop.EnableAutostart(AppName, exe, args...); err != nil {
		return err
	}
	fmt.Fprintln(c.Root().Writer, "Autostart enabled")
	return nil
}

func (cmd *AutostartCmd) disable(ctx context.Context, c *cli.Command) error {
	if err := cmd.desktop.DisableAutostart(AppName); err != nil {
		return err
	}
	fmt.Fprintln(c.Root().Writer, "Autostart disabled")
	return nil
}

func (cmd *AutostartCmd) status(ctx context.Context, c *cli.Command) error {
	enabled, err := cmd.desktop.AutostartEnabled(AppName)
	if err != nil {
		return fmt.Errorf("check autostart: %w", err)
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(c.Root().Writer, "Autostart %s\n", state)
	return nil
}
