package application

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/browser"
	"github.com/thenoetrevino/jobtrack/internal/cli"
)

// OpenCmd returns the open subcommand
func OpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open [id]",
		Short: "Open an application's posting in the browser",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runOpen,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	id, err := cli.GetApplicationID(cmd, args)
	if err != nil {
		return formatter.Fail(err, "Usage: jobtrack open <id>")
	}

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()

	ctx, cancel := withTimeout(cmd)
	defer cancel()

	application, err := cliInstance.App.ApplicationService.GetApplication(ctx, id)
	if err != nil {
		return formatter.Fail(err, "Use 'jobtrack list' to see application IDs")
	}

	if err := cliInstance.App.Opener.Open(application.URL); err != nil {
		suggestion := ""
		if errors.Is(err, browser.ErrNoURL) {
			suggestion = fmt.Sprintf("Add one with: jobtrack edit %d --url=<posting url>", id)
		}
		return formatter.Fail(err, suggestion)
	}

	if formatter.Quiet {
		fmt.Printf("%d\n", id)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("opened", map[string]interface{}{
			"id":  id,
			"url": application.URL,
		})
	}

	fmt.Printf("✓ Opened %s\n", application.URL)
	return nil
}
