// Package export writes applications to CSV files for use in spreadsheets.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/jobtrack/internal/models"
)

// Header is the fixed first row of every export
var Header = []string{
	"Job Name",
	"Company",
	"Date Applied",
	"Status",
	"Priority",
	"URL",
	"Salary",
	"Recruiter Contact",
	"Team Member Contact",
	"Hiring Manager Contact",
	"Created At",
}

// Source provides the rows to export, already in export order
type Source interface {
	ExportAll(ctx context.Context) ([]*models.Application, error)
}

// DefaultFileName returns job_applications_YYYYMMDD.csv for the given day
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("job_applications_%s.csv", now.Format("20060102"))
}

// WriteCSV writes the header and one row per application, in the given order
func WriteCSV(w io.Writer, apps []*models.Application) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, app := range apps {
		if err := writer.Write(record(app)); err != nil {
			return fmt.Errorf("failed to write application %d: %w", app.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func record(app *models.Application) []string {
	createdAt := ""
	if !app.CreatedAt.IsZero() {
		createdAt = app.CreatedAt.Format(models.TimestampLayout)
	}
	return []string{
		app.JobName,
		app.Company,
		app.DateApplied,
		string(app.Status),
		string(app.Priority),
		app.URL,
		app.Salary,
		app.RecruiterContact,
		app.TeamMemberContact,
		app.HiringManagerContact,
		createdAt,
	}
}

// ToFile exports every application to path and returns the number of rows
// written. Rows go to a temporary file in the same directory that replaces
// path only once complete, so a failed export never leaves a truncated CSV.
func ToFile(ctx context.Context, src Source, path string) (int, error) {
	apps, err := src.ExportAll(ctx)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".jobtrack-export-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if err := writeFile(tmp, apps); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("exported applications", "path", path, "count", len(apps))
	return len(apps), nil
}

// writeFile writes the CSV to file and closes it
func writeFile(file *os.File, apps []*models.Application) error {
	if err := WriteCSV(file, apps); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Chmod(0o644); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
