package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
)

// StatusCmd returns the status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [id]",
		Short: "Change only the status of an application",
		Long: `Change only the status of an application.

Examples:
  jobtrack status 3 --status="Interview Scheduled"
  jobtrack status --id=3 --status=rejected
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runStatus,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	cmd.Flags().String("status", "", "New status: "+cli.StatusList())
	addOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	id, err := cli.GetApplicationID(cmd, args)
	if err != nil {
		return formatter.Fail(err, "Usage: jobtrack status <id> --status=<status>")
	}

	raw, _ := cmd.Flags().GetString("status")
	if raw == "" {
		return formatter.Fail(fmt.Errorf("%w: --status is required", cli.ErrUsage), "Valid statuses: "+cli.StatusList())
	}
	status, err := cli.ParseStatus(raw)
	if err != nil {
		return formatter.Fail(err, "Valid statuses: "+cli.StatusList())
	}

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()

	ctx, cancel := withTimeout(cmd)
	defer cancel()

	if err := cliInstance.App.ApplicationService.UpdateStatus(ctx, id, status); err != nil {
		return formatter.Fail(err, "Use 'jobtrack list' to see application IDs")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("application", map[string]interface{}{
			"id":     id,
			"status": status,
		})
	}

	fmt.Printf("✓ Application %d is now %s\n", id, status)
	return nil
}
