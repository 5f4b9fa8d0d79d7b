package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
	"github.com/thenoetrevino/jobtrack/internal/cli/application"
	"github.com/thenoetrevino/jobtrack/internal/launcher"
	"github.com/thenoetrevino/jobtrack/internal/logging"
)

// NewRootCmd builds the jobtrack command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jobtrack",
		Short: "jobtrack - track your job applications",
		Long: `jobtrack keeps a local record of the jobs you applied to: where, when,
what it pays, who you talked to, and how it is going.

Run without a subcommand to open the interactive board.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logs go to ~/.jobtrack/logs so they never mix with command output
			if err := logging.Init(); err != nil {
				slog.Warn("file logging unavailable", "error", err)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := launcher.Launch(cmd.Context(), cli.DBPath(cmd)); err != nil {
				formatter := &cli.OutputFormatter{}
				return formatter.Fail(err, "")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (default ~/.jobtrack/job_tracker.db)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})

	rootCmd.AddCommand(application.Commands()...)

	return rootCmd
}

// Execute runs the root command. Errors that no formatter reported come from
// cobra itself (unknown commands, bad arguments) and are usage errors.
func Execute() error {
	return run(NewRootCmd())
}

func run(rootCmd *cobra.Command) error {
	err := rootCmd.Execute()
	if err != nil && !cli.IsReported(err) && !errors.Is(err, cli.ErrUsage) {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return err
}
