package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// runMigrations creates the applications table and upgrades older databases.
// Safe to call on every startup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_name TEXT NOT NULL,
			url TEXT,
			company TEXT NOT NULL,
			date_applied TEXT NOT NULL,
			salary TEXT,
			status TEXT NOT NULL,
			recruiter_dm TEXT,
			team_member_dm TEXT,
			hiring_manager_dm TEXT,
			priority TEXT DEFAULT 'Medium',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create applications table: %w", err)
	}

	// Databases created before priority existed need the column added
	hasPriority, err := columnExists(ctx, db, "applications", "priority")
	if err != nil {
		return err
	}
	if !hasPriority {
		slog.Info("adding priority column to applications table")
		if _, err := db.ExecContext(ctx,
			`ALTER TABLE applications ADD COLUMN priority TEXT DEFAULT 'Medium'`,
		); err != nil {
			return fmt.Errorf("failed to add priority column: %w", err)
		}
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_applications_date_applied
		ON applications(date_applied)
	`)
	if err != nil {
		return fmt.Errorf("failed to create date index: %w", err)
	}

	return nil
}

// columnExists reports whether table has a column with the given name
func columnExists(ctx context.Context, db *sql.DB, table, column string) (bool, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("failed to read schema of %s: %w", table, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	found := false
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return false, fmt.Errorf("failed to scan column info: %w", err)
		}
		if name == column {
			found = true
		}
	}

	if err := rows.Err(); err != nil {
		return false, err
	}

	return found, nil
}
