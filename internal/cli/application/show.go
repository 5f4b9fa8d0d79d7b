package application

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
	"github.com/thenoetrevino/jobtrack/internal/models"
)

const showWidth = 80

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show application details",
		Long:  "Display every field of an application, including contacts and when it was recorded.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("id", 0, "Application ID (can also be provided as positional argument)")
	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)

	id, err := cli.GetApplicationID(cmd, args)
	if err != nil {
		return formatter.Fail(err, "Usage: jobtrack show <id> or jobtrack show --id=<id>")
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

	if formatter.Quiet {
		fmt.Printf("%d\n", application.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("application", application)
	}

	fmt.Println(renderDetail(application))
	return nil
}

// renderDetail renders the markdown detail through glamour, falling back to
// the raw markdown when the renderer cannot be built.
func renderDetail(a *models.Application) string {
	md := detailMarkdown(a)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(showWidth),
	)
	if err != nil {
		slog.Warn("glamour renderer unavailable", "error", err)
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		slog.Warn("failed to render application detail", "id", a.ID, "error", err)
		return md
	}
	return strings.TrimRight(out, "\n")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

func detailMarkdown(a *models.Application) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", a.JobName)
	fmt.Fprintf(&b, "**Company:** %s  \n", a.Company)
	fmt.Fprintf(&b, "**Applied:** %s  \n", a.DateApplied)
	fmt.Fprintf(&b, "**Status:** %s  \n", a.Status)
	fmt.Fprintf(&b, "**Priority:** %s  \n", a.Priority)
	fmt.Fprintf(&b, "**Salary:** %s  \n", orDash(a.Salary))
	if a.URL != "" {
		fmt.Fprintf(&b, "**Posting:** <%s>\n", a.URL)
	} else {
		b.WriteString("**Posting:** —\n")
	}

	b.WriteString("\n## Contacts\n\n")
	fmt.Fprintf(&b, "- Recruiter: %s\n", orDash(a.RecruiterContact))
	fmt.Fprintf(&b, "- Team member: %s\n", orDash(a.TeamMemberContact))
	fmt.Fprintf(&b, "- Hiring manager: %s\n", orDash(a.HiringManagerContact))

	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "\n_Recorded %s (ID %d)_\n", a.CreatedAt.Format(models.TimestampLayout), a.ID)
	}

	return b.String()
}
