package application

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/export"
)

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all applications to CSV",
		Long: `Export all applications to CSV, newest first.

Examples:
  # Writes job_applications_YYYYMMDD.csv in the current directory
  jobtrack export

  jobtrack export --output=~/Documents/applications.csv
`,
		Args: cobra.NoArgs,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default job_applications_YYYYMMDD.csv)")
	addOutputFlags(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	formatter := formatterFor(cmd)
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = export.DefaultFileName(time.Now())
	}
	output = config.ExpandHome(output)

	cliInstance, closeCLI, err := openCLI(cmd)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer closeCLI()

	ctx, cancel := withTimeout(cmd)
	defer cancel()

	rows, err := export.ToFile(ctx, cliInstance.App.ApplicationService, output)
	if err != nil {
		return formatter.Fail(err, "Check that the output directory exists and is writable")
	}

	if formatter.Quiet {
		fmt.Println(output)
		return nil
	}
	if formatter.JSON {
		return formatter.SuccessWith("export", map[string]interface{}{
			"path": output,
			"rows": rows,
		})
	}

	fmt.Printf("✓ Exported %d application(s) to %s\n", rows, output)
	return nil
}
