package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"

	"pomotick/internal/storage/history"
)

// HistoryCmd prints a per-state summary of recorded intervals.
type HistoryCmd struct {
	flags *Flags
	days  int
	now   func() time.Time
}

// NewHistoryCmd creates the history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags, now: time.Now}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "Summarise recorded work and rest intervals",
		UsageText: "pomotick history [--days N]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "days",
				Usage:       "number of days to include",
				Value:       7,
				Destination: &cmd.days,
				Validator: func(days int) error {
					if days <= 0 {
						return fmt.Errorf("days must be positive")
					}
					return nil
				},
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	db, err := history.Open(filepath.Join(cmd.flags.DataDir, history.FileName))
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = db.Close() }()

	since := cmd.now().AddDate(0, 0, -cmd.days)
	summary, err := history.NewRepository(db).Summary(ctx, since)
	if err != nil {
		return fmt.Errorf("summarise history: %w", err)
	}

	out := c.Root().Writer
	if len(summary) == 0 {
		fmt.Fprintf(out, "No intervals recorded in the last %d day(s)\n", cmd.days)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tINTERVALS\tTIME")
	for _, row := range summary {
		total := time.Duration(row.TotalSeconds) * time.Second
		fmt.Fprintf(w, "%s\t%d\t%s\n", row.State, row.Intervals, total)
	}
	return w.Flush()
}
