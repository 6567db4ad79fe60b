package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sleeptrack/internal/bootstrap"
	sleepdto "sleeptrack/internal/modules/sleep/dto"
	"sleeptrack/internal/platform/config"
	"sleeptrack/internal/ui/format"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := config.Options{}

	root := &cobra.Command{
		Use:           "sleeptrack",
		Short:         "Track your sleep patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.DataDir, "data-dir", "", "directory holding the database and log (default $XDG_DATA_HOME/sleeptrack)")
	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")

	root.AddCommand(newTUICmd(&opts))
	root.AddCommand(newHistoryCmd(&opts))
	return root
}

func loadApp(opts config.Options) (*bootstrap.App, error) {
	cfg, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func runTUI(opts config.Options) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return bootstrap.RunTUI(app)
}

func newTUICmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the sleep tracker terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*opts)
		},
	}
}

func newHistoryCmd(opts *config.Options) *cobra.Command {
	var limit int
	var all bool

	history := &cobra.Command{
		Use:   "history",
		Short: "Print recorded sleep sessions, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, use --all to show every session")
			}
			app, err := loadApp(*opts)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			n := app.HistoryLimit
			if cmd.Flags().Changed("limit") {
				n = limit
			}
			if all {
				n = 0
			}
			sessions, err := app.SleepCLI.History(context.Background(), n)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), sessions)
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", config.DefaultHistoryLimit, "number of sessions to show (must be positive)")
	history.Flags().BoolVar(&all, "all", false, "show every recorded session")
	return history
}

func printHistory(w io.Writer, sessions []sleepdto.SessionOutput) {
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(w, "no sleep sessions recorded yet")
		return
	}
	for _, s := range sessions {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", format.Date(s.StartTime), format.Range(s.StartTime, s.EndTime), format.Duration(s.DurationMin))
	}
}
