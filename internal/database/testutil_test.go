package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/jobtrack/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
// This is the unified test database setup used by all tests
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// A second pooled connection would see a different in-memory database
	db.SetMaxOpenConns(1)

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile opens a migrated file-based database for persistence tests
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobtrack-test.db")

	db, err := InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, path
}

// ============================================================================
// FIXTURES
// ============================================================================

// newFields returns a valid set of application fields
func newFields(jobName, company, date string) models.ApplicationFields {
	return models.ApplicationFields{
		JobName:     jobName,
		Company:     company,
		DateApplied: date,
		Status:      models.StatusApplied,
		Priority:    models.PriorityMedium,
	}
}

// createTestApplication inserts an application and fails the test on error
func createTestApplication(t *testing.T, repo *Repository, fields models.ApplicationFields) *models.Application {
	t.Helper()
	app, err := repo.CreateApplication(context.Background(), fields)
	require.NoError(t, err)
	return app
}

// ids extracts application IDs in order
func ids(apps []*models.Application) []int {
	out := make([]int, len(apps))
	for i, app := range apps {
		out[i] = app.ID
	}
	return out
}
