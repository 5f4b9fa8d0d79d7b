package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Transaction Helper Tests
// ============================================================================

func insertRow(tx *sql.Tx, jobName string) error {
	_, err := tx.Exec(
		`INSERT INTO applications (job_name, company, date_applied, status, priority)
		 VALUES (?, 'Acme', '2024-01-01', 'Applied', 'Medium')`,
		jobName,
	)
	return err
}

func countByJob(t *testing.T, db *sql.DB, jobName string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM applications WHERE job_name = ?", jobName).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestWithTx_Success_Commit(t *testing.T) {
	db := setupTestDB(t)

	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		return insertRow(tx, "Committed")
	})
	if err != nil {
		t.Fatalf("Expected transaction to succeed, got error: %v", err)
	}

	if count := countByJob(t, db, "Committed"); count != 1 {
		t.Errorf("Expected 1 application, got %d", count)
	}
}

func TestWithTx_Error_Rollback(t *testing.T) {
	db := setupTestDB(t)

	expectedErr := errors.New("intentional error")
	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		if err := insertRow(tx, "Rolled Back"); err != nil {
			return err
		}
		return expectedErr
	})

	if !errors.Is(err, expectedErr) {
		t.Fatalf("Expected error %v, got %v", expectedErr, err)
	}
	if count := countByJob(t, db, "Rolled Back"); count != 0 {
		t.Errorf("Expected 0 applications (rollback), got %d", count)
	}
}

func TestWithTx_Error_BeginFails(t *testing.T) {
	db := setupTestDB(t)
	_ = db.Close()

	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		return nil
	})
	if err == nil {
		t.Fatal("Expected error when beginning transaction on closed DB, got nil")
	}
}

// ============================================================================
// Null Conversion Tests
// ============================================================================

func TestNullStringToString(t *testing.T) {
	if got := NullStringToString(sql.NullString{String: "hello", Valid: true}); got != "hello" {
		t.Errorf("Expected 'hello', got %q", got)
	}
	if got := NullStringToString(sql.NullString{}); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestNullTimeToTime(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	if got := NullTimeToTime(sql.NullTime{Time: now, Valid: true}); !got.Equal(now) {
		t.Errorf("Expected %v, got %v", now, got)
	}
	if got := NullTimeToTime(sql.NullTime{}); !got.IsZero() {
		t.Errorf("Expected zero time, got %v", got)
	}
}

func TestStringToNull(t *testing.T) {
	if ns := stringToNull(""); ns.Valid {
		t.Error("empty string should be stored as NULL")
	}
	if ns := stringToNull("https://x"); !ns.Valid || ns.String != "https://x" {
		t.Errorf("unexpected %+v", ns)
	}
}
