package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli/styles"
)

// StatsCmd returns the stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show application counts",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}

	addOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()

	ctx, cancel := withTimeout(cmd)
	defer cancel()

	stats, err := cliInstance.App.ApplicationService.GetStats(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", stats.Total)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("stats", stats)
	}

	label := styles.LabelStyle.Render
	fmt.Printf("%s %d\n", label("Total:   "), stats.Total)
	fmt.Printf("%s %d\n", label("Applied: "), stats.Applied)
	fmt.Printf("%s %d\n", label("Pending: "), stats.Pending)
	fmt.Printf("%s %d\n", label("Offers:  "), stats.Offers)
	fmt.Printf("%s %d\n", label("Rejected:"), stats.Rejected)
	return nil
}
