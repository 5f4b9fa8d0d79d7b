package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/cli"
	"github.com/thenoetrevino/jobtrack/internal/cli/styles"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications",
		Long: `List applications, newest first or by priority.

Examples:
  jobtrack list
  jobtrack list --search=acme --sort=priority
  jobtrack list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Case-insensitive filter on job name, company and status")
	cmd.Flags().String("sort", "", "Sort order: date or priority (default from config, else date)")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	search, _ := cmd.Flags().GetString("search")
	sortFlag, _ := cmd.Flags().GetString("sort")

	sortKey, err := resolveSort(sortFlag)
	if err != nil {
		return formatter.Fail(err, "Valid sort orders: date, priority")
	}

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()

	ctx, cancel := withTimeout(cmd)
	defer cancel()

	apps, err := cliInstance.App.ApplicationService.ListApplications(ctx, applicationservice.ListOptions{
		Filter: search,
		Sort:   sortKey,
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		for _, a := range apps {
			fmt.Printf("%d\n", a.ID)
		}
		return nil
	}

	if formatter.JSON {
		if apps == nil {
			apps = []*models.Application{}
		}
		return formatter.SuccessWith("applications", apps)
	}

	if len(apps) == 0 {
		fmt.Println(styles.SubtitleStyle.Render("No applications found"))
		return nil
	}

	fmt.Println(styles.HeaderStyle.Render(fmt.Sprintf("%-5s %-28s %-20s %-10s %-19s %s",
		"ID", "Job", "Company", "Applied", "Status", "Priority")))
	for _, a := range apps {
		fmt.Printf("%-5d %-28s %-20s %-10s %s %s\n",
			a.ID,
			truncate(a.JobName, 28),
			truncate(a.Company, 20),
			a.DateApplied,
			styles.Status(a.Status, 19),
			styles.Priority(a.Priority),
		)
	}
	fmt.Println(styles.SubtitleStyle.Render(fmt.Sprintf("%d application(s), sorted by %s", len(apps), sortKey)))
	return nil
}

// resolveSort picks the --sort flag, falling back to the configured default
func resolveSort(flag string) (models.SortKey, error) {
	if flag == "" {
		cfg, err := config.Load()
		if err != nil {
			return models.SortDateApplied, nil
		}
		return cfg.SortKey(), nil
	}

	key, err := models.ParseSortKey(flag)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return key, nil
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
