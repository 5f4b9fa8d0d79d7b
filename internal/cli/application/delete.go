package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an application",
		Long: `Delete an application. Asks for confirmation unless --force is given.
--json and --quiet cannot prompt, so they require --force.

Examples:
  jobtrack delete 3
  jobtrack delete --id=3 --force
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	cmd.Flags().Bool("force", false, "Skip the confirmation prompt")
	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	id, err := cli.GetApplicationID(cmd, args)
	if err != nil {
		return formatter.Fail(err, "Usage: jobtrack delete <id> [--force]")
	}

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()
	svc := cliInstance.App.ApplicationService

	ctx, cancel := withTimeout(cmd)
	existing, err := svc.GetApplication(ctx, id)
	cancel()
	if err != nil {
		return formatter.Fail(err, "Use 'jobtrack list' to see application IDs")
	}

	if !force && (formatter.Quiet || formatter.JSON) {
		err := fmt.Errorf("%w: deleting with --json or --quiet requires --force", cli.ErrUsage)
		return formatter.Fail(err, fmt.Sprintf("jobtrack delete %d --force", id))
	}

	if !force {
		confirmed, err := cli.Confirm(fmt.Sprintf("Delete '%s' at %s?", existing.JobName, existing.Company))
		if err != nil {
			return formatter.Fail(err, "")
		}
		if !confirmed {
			fmt.Println("Cancelled, nothing deleted")
			return nil
		}
	}

	ctx, cancel = withTimeout(cmd)
	defer cancel()

	if err := svc.DeleteApplication(ctx, id); err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("deleted", map[string]interface{}{"id": id})
	}

	fmt.Printf("✓ Deleted '%s' at %s (ID: %d)\n", existing.JobName, existing.Company, id)
	return nil
}
