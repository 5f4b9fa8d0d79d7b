package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new job application",
		Long: `Record a new job application.

Examples:
  # Minimal, applied today with Medium priority
  jobtrack add --job="Backend Engineer" --company=Acme

  # Everything at once
  jobtrack add \
    --job="Staff Engineer" \
    --company="Globex" \
    --url=https://globex.example/jobs/42 \
    --date=2024-03-01 \
    --status="Interview Scheduled" \
    --priority=high \
    --recruiter="jane@globex.example"

  # Capture the new ID in a script
  ID=$(jobtrack add --job=SRE --company=Initech --quiet)

  # Fill in an interactive form
  jobtrack add --form
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cli.AddApplicationFlags(cmd.Flags(), models.DateToday, models.StatusApplied.String(), models.DefaultPriority.String())
	cmd.Flags().Bool("form", false, "Fill in the application with an interactive form")
	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	useForm, _ := cmd.Flags().GetBool("form")

	input, err := cli.ApplyApplicationFlags(cmd.Flags(), applicationservice.Input{}, false)
	if err != nil {
		return formatter.Fail(err, "Valid statuses: "+cli.StatusList())
	}

	if useForm {
		var ok bool
		input, ok, err = cli.RunApplicationForm("Save this application?", input)
		if err != nil {
			return formatter.Fail(err, "")
		}
		if !ok {
			fmt.Println("Cancelled, nothing saved")
			return nil
		}
	}

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()

	ctx, cancel := withTimeout(cmd)
	defer cancel()

	created, err := cliInstance.App.ApplicationService.CreateApplication(ctx, input)
	if err != nil {
		return formatter.Fail(err, "--job and --company are required; dates are YYYY-MM-DD or today")
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", created.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("application", created)
	}

	fmt.Printf("✓ Application '%s' at %s recorded (ID: %d)\n", created.JobName, created.Company, created.ID)
	fmt.Printf("  Applied: %s\n", created.DateApplied)
	fmt.Printf("  Status: %s\n", created.Status)
	fmt.Printf("  Priority: %s\n", created.Priority)
	return nil
}
