package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
)

// operationTimeout bounds each database call made by a command
const operationTimeout = 10 * time.Second

// Commands returns every application subcommand, ready to attach to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		EditCmd(),
		StatusCmd(),
		DeleteCmd(),
		ListCmd(),
		ShowCmd(),
		StatsCmd(),
		ExportCmd(),
		OpenCmd(),
	}
}

// addOutputFlags registers the agent-friendly flags every command carries
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// openCLI resolves the CLI for cmd; the returned func closes it
func openCLI(cmd *cobra.Command) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(commandContext(cmd), cli.DBPath(cmd))
	if err != nil {
		return nil, nil, err
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}, nil
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(commandContext(cmd), operationTimeout)
}
