package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/jobtrack/internal/database"
	"github.com/thenoetrevino/jobtrack/internal/models"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestApplication inserts an application row directly and returns its ID
func CreateTestApplication(t *testing.T, db *sql.DB, jobName, company, dateApplied string) int {
	t.Helper()
	return CreateTestApplicationWith(t, db, jobName, company, dateApplied, models.StatusApplied, models.PriorityMedium)
}

// CreateTestApplicationWith inserts an application with an explicit status and priority
func CreateTestApplicationWith(t *testing.T, db *sql.DB, jobName, company, dateApplied string, status models.Status, priority models.Priority) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(),
		`INSERT INTO applications (job_name, company, date_applied, status, priority)
		 VALUES (?, ?, ?, ?, ?)`,
		jobName, company, dateApplied, string(status), string(priority),
	)
	if err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get application ID: %v", err)
	}
	return int(id)
}

// CountApplications returns the number of rows in the applications table
func CountApplications(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM applications").Scan(&count); err != nil {
		t.Fatalf("Failed to count applications: %v", err)
	}
	return count
}
