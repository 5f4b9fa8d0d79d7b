package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/jobtrack/internal/models"
	"golang.org/x/text/cases"
)

// ApplicationRepo handles all application-related database operations.
type ApplicationRepo struct {
	db *sql.DB
}

const applicationColumns = `id, job_name, company, url, date_applied, salary, status,
	recruiter_dm, team_member_dm, hiring_manager_dm, priority, created_at`

// orderByClause returns the ORDER BY expression for a sort key.
// id breaks remaining ties so listings are deterministic.
func orderByClause(sort models.SortKey) string {
	if sort == models.SortPriority {
		return `CASE priority WHEN 'High' THEN 1 WHEN 'Medium' THEN 2 WHEN 'Low' THEN 3 ELSE 4 END,
			date_applied DESC, id DESC`
	}
	return `date_applied DESC, id DESC`
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var (
		app                              models.Application
		url, salary                      sql.NullString
		recruiter, teamMember, hiringMgr sql.NullString
		createdAt                        sql.NullTime
	)
	if err := row.Scan(
		&app.ID, &app.JobName, &app.Company, &url, &app.DateApplied, &salary, &app.Status,
		&recruiter, &teamMember, &hiringMgr, &app.Priority, &createdAt,
	); err != nil {
		return nil, err
	}
	app.URL = NullStringToString(url)
	app.Salary = NullStringToString(salary)
	app.RecruiterContact = NullStringToString(recruiter)
	app.TeamMemberContact = NullStringToString(teamMember)
	app.HiringManagerContact = NullStringToString(hiringMgr)
	app.CreatedAt = NullTimeToTime(createdAt)
	return &app, nil
}

// CreateApplication inserts a new application and returns it with its ID and creation timestamp
func (r *ApplicationRepo) CreateApplication(ctx context.Context, fields models.ApplicationFields) (*models.Application, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO applications (job_name, company, url, date_applied, salary, status,
				recruiter_dm, team_member_dm, hiring_manager_dm, priority)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			fields.JobName, fields.Company, stringToNull(fields.URL), fields.DateApplied,
			stringToNull(fields.Salary), string(fields.Status),
			stringToNull(fields.RecruiterContact), stringToNull(fields.TeamMemberContact),
			stringToNull(fields.HiringManagerContact), string(fields.Priority),
		)
		if err != nil {
			return fmt.Errorf("failed to insert application '%s': %w", fields.JobName, err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get application ID after insert: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Retrieve the created application to get the timestamp
	return r.GetApplicationByID(ctx, int(id))
}

// GetApplicationByID retrieves a single application
func (r *ApplicationRepo) GetApplicationByID(ctx context.Context, id int) (*models.Application, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = ?`,
		id,
	)
	app, err := scanApplication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("application %d: %w", id, models.ErrApplicationNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application %d: %w", id, err)
	}
	return app, nil
}

// UpdateApplication overwrites every mutable field. id and created_at are left alone.
func (r *ApplicationRepo) UpdateApplication(ctx context.Context, id int, fields models.ApplicationFields) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications
		 SET job_name = ?, company = ?, url = ?, date_applied = ?, salary = ?, status = ?,
			 recruiter_dm = ?, team_member_dm = ?, hiring_manager_dm = ?, priority = ?
		 WHERE id = ?`,
		fields.JobName, fields.Company, stringToNull(fields.URL), fields.DateApplied,
		stringToNull(fields.Salary), string(fields.Status),
		stringToNull(fields.RecruiterContact), stringToNull(fields.TeamMemberContact),
		stringToNull(fields.HiringManagerContact), string(fields.Priority),
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update application %d: %w", id, err)
	}
	return requireOneRow(result, id)
}

// UpdateApplicationStatus changes only the status of an application
func (r *ApplicationRepo) UpdateApplicationStatus(ctx context.Context, id int, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE applications SET status = ? WHERE id = ?`,
		string(status), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update status of application %d: %w", id, err)
	}
	return requireOneRow(result, id)
}

// DeleteApplication permanently removes an application
func (r *ApplicationRepo) DeleteApplication(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application %d: %w", id, err)
	}
	return requireOneRow(result, id)
}

// requireOneRow turns a write that touched nothing into ErrApplicationNotFound
func requireOneRow(result sql.Result, id int) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows for application %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("application %d: %w", id, models.ErrApplicationNotFound)
	}
	return nil
}

// ListApplications returns all applications in the requested order.
// A non-empty filter keeps only rows whose job name, company or status
// contains it, ignoring case.
func (r *ApplicationRepo) ListApplications(ctx context.Context, filter string, sort models.SortKey) ([]*models.Application, error) {
	apps, err := r.queryApplications(ctx, orderByClause(sort))
	if err != nil {
		return nil, err
	}

	filter = strings.TrimSpace(filter)
	if filter == "" {
		return apps, nil
	}

	folder := cases.Fold()
	needle := folder.String(filter)
	matched := make([]*models.Application, 0, len(apps))
	for _, app := range apps {
		if strings.Contains(folder.String(app.JobName), needle) ||
			strings.Contains(folder.String(app.Company), needle) ||
			strings.Contains(folder.String(string(app.Status)), needle) {
			matched = append(matched, app)
		}
	}
	return matched, nil
}

// GetAllApplicationsForExport returns every application, most recently applied first
func (r *ApplicationRepo) GetAllApplicationsForExport(ctx context.Context) ([]*models.Application, error) {
	return r.queryApplications(ctx, orderByClause(models.SortDateApplied))
}

func (r *ApplicationRepo) queryApplications(ctx context.Context, orderBy string) ([]*models.Application, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+applicationColumns+` FROM applications ORDER BY `+orderBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	apps := make([]*models.Application, 0, 16)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}

// GetApplicationStats counts all applications and those in the headline statuses
func (r *ApplicationRepo) GetApplicationStats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		 FROM applications`,
		string(models.StatusApplied), string(models.StatusPending),
		string(models.StatusOfferReceived), string(models.StatusRejected),
	).Scan(&stats.Total, &stats.Applied, &stats.Pending, &stats.Offers, &stats.Rejected)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed to count applications: %w", err)
	}
	return stats, nil
}
