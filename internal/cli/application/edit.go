package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit an existing application",
		Long: `Edit an existing application. Only the flags you pass are changed.

Examples:
  jobtrack edit 3 --salary='$140k' --priority=high
  jobtrack edit --id=3 --form
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	cli.AddApplicationFlags(cmd.Flags(), "", "", "")
	cmd.Flags().Bool("form", false, "Edit in an interactive form prefilled with the current values")
	addOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	useForm, _ := cmd.Flags().GetBool("form")

	id, err := cli.GetApplicationID(cmd, args)
	if err != nil {
		return formatter.Fail(err, "Usage: jobtrack edit <id> [flags]")
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

	input, err := cli.ApplyApplicationFlags(cmd.Flags(), applicationservice.InputFrom(existing), true)
	if err != nil {
		return formatter.Fail(err, "Valid statuses: "+cli.StatusList())
	}

	if useForm {
		var ok bool
		input, ok, err = cli.RunApplicationForm("Save changes?", input)
		if err != nil {
			return formatter.Fail(err, "")
		}
		if !ok {
			fmt.Println("Cancelled, nothing changed")
			return nil
		}
	}

	ctx, cancel = withTimeout(cmd)
	defer cancel()

	if err := svc.UpdateApplication(ctx, id, input); err != nil {
		return formatter.Fail(err, "")
	}

	updated, err := svc.GetApplication(ctx, id)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", updated.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("application", updated)
	}

	fmt.Printf("✓ Application %d updated: %s at %s (%s)\n", updated.ID, updated.JobName, updated.Company, updated.Status)
	return nil
}
