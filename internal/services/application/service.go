// Package application holds the business rules for tracked job applications:
// validation, "today" normalization and the error taxonomy seen by the views.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/jobtrack/internal/database"
	"github.com/thenoetrevino/jobtrack/internal/models"
)

// Service defines all application-related business operations
type Service interface {
	// Read operations
	GetApplication(ctx context.Context, id int) (*models.Application, error)
	ListApplications(ctx context.Context, opts ListOptions) ([]*models.Application, error)
	GetStats(ctx context.Context) (models.Stats, error)
	ExportAll(ctx context.Context) ([]*models.Application, error)

	// Write operations
	CreateApplication(ctx context.Context, input Input) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int, input Input) error
	UpdateStatus(ctx context.Context, id int, status models.Status) error
	DeleteApplication(ctx context.Context, id int) error
}

// Input is what the add and edit forms submit.
// DateApplied may be "today"; Priority may be empty for the default.
type Input struct {
	JobName              string
	Company              string
	URL                  string
	DateApplied          string
	Salary               string
	Status               models.Status
	RecruiterContact     string
	TeamMemberContact    string
	HiringManagerContact string
	Priority             models.Priority
}

// InputFrom prefills an Input from a stored application, for edit forms
func InputFrom(app *models.Application) Input {
	return Input{
		JobName:              app.JobName,
		Company:              app.Company,
		URL:                  app.URL,
		DateApplied:          app.DateApplied,
		Salary:               app.Salary,
		Status:               app.Status,
		RecruiterContact:     app.RecruiterContact,
		TeamMemberContact:    app.TeamMemberContact,
		HiringManagerContact: app.HiringManagerContact,
		Priority:             app.Priority,
	}
}

// ListOptions controls filtering and ordering of ListApplications
type ListOptions struct {
	Filter string
	Sort   models.SortKey
}

// Option configures the service
type Option func(*service)

// WithClock overrides the time source used to resolve "today"
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithLogger sets the logger used for mutation events
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// service implements Service interface
type service struct {
	repo   database.DataStore
	now    func() time.Time
	logger *slog.Logger
}

// NewService creates a new application service
func NewService(repo database.DataStore, opts ...Option) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateApplication validates the input and stores a new application
func (s *service) CreateApplication(ctx context.Context, input Input) (*models.Application, error) {
	fields, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.CreateApplication(ctx, fields)
	if err != nil {
		return nil, wrapStorage("failed to create application", err)
	}

	s.logger.Info("application created", "id", app.ID, "job", app.JobName, "company", app.Company)
	return app, nil
}

// UpdateApplication validates the input and overwrites every mutable field
func (s *service) UpdateApplication(ctx context.Context, id int, input Input) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid id %d", ErrNotFound, id)
	}

	fields, err := s.validate(input)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateApplication(ctx, id, fields); err != nil {
		return s.translate("failed to update application", id, err)
	}

	s.logger.Info("application updated", "id", id)
	return nil
}

// UpdateStatus changes only the status of the given application
func (s *service) UpdateStatus(ctx context.Context, id int, status models.Status) error {
	if id <= 0 {
		return fmt.Errorf("%w: no application selected", ErrNotFound)
	}
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, string(status))
	}

	if err := s.repo.UpdateApplicationStatus(ctx, id, status); err != nil {
		return s.translate("failed to update status", id, err)
	}

	s.logger.Info("application status updated", "id", id, "status", status)
	return nil
}

// DeleteApplication permanently removes an application
func (s *service) DeleteApplication(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: no application selected", ErrNotFound)
	}

	if err := s.repo.DeleteApplication(ctx, id); err != nil {
		return s.translate("failed to delete application", id, err)
	}

	s.logger.Info("application deleted", "id", id)
	return nil
}

// GetApplication returns one application
func (s *service) GetApplication(ctx context.Context, id int) (*models.Application, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid id %d", ErrNotFound, id)
	}

	app, err := s.repo.GetApplicationByID(ctx, id)
	if err != nil {
		return nil, s.translate("failed to get application", id, err)
	}
	return app, nil
}

// ListApplications returns the filtered, sorted listing
func (s *service) ListApplications(ctx context.Context, opts ListOptions) ([]*models.Application, error) {
	apps, err := s.repo.ListApplications(ctx, opts.Filter, opts.Sort)
	if err != nil {
		return nil, wrapStorage("failed to list applications", err)
	}
	return apps, nil
}

// GetStats returns the aggregate counts
func (s *service) GetStats(ctx context.Context) (models.Stats, error) {
	stats, err := s.repo.GetApplicationStats(ctx)
	if err != nil {
		return models.Stats{}, wrapStorage("failed to get stats", err)
	}
	return stats, nil
}

// ExportAll returns every application ordered by date applied, most recent first
func (s *service) ExportAll(ctx context.Context) ([]*models.Application, error) {
	apps, err := s.repo.GetAllApplicationsForExport(ctx)
	if err != nil {
		return nil, wrapStorage("failed to load applications for export", err)
	}
	return apps, nil
}

// translate maps repository errors onto the service taxonomy
func (s *service) translate(op string, id int, err error) error {
	if errors.Is(err, models.ErrApplicationNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return wrapStorage(op, err)
}

// ============================================================================
// VALIDATION
// ============================================================================

// validate checks required fields and resolves the date, producing the
// exact fields to persist. Nothing is written when it fails.
func (s *service) validate(input Input) (models.ApplicationFields, error) {
	jobName := strings.TrimSpace(input.JobName)
	if jobName == "" {
		return models.ApplicationFields{}, ErrEmptyJobName
	}

	company := strings.TrimSpace(input.Company)
	if company == "" {
		return models.ApplicationFields{}, ErrEmptyCompany
	}

	date, err := NormalizeDate(input.DateApplied, s.now())
	if err != nil {
		return models.ApplicationFields{}, err
	}

	if !input.Status.Valid() {
		return models.ApplicationFields{}, fmt.Errorf("%w: %q", ErrInvalidStatus, string(input.Status))
	}

	priority := input.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return models.ApplicationFields{}, fmt.Errorf("%w: %q", ErrInvalidPriority, string(priority))
	}

	return models.ApplicationFields{
		JobName:              jobName,
		Company:              company,
		URL:                  strings.TrimSpace(input.URL),
		DateApplied:          date,
		Salary:               strings.TrimSpace(input.Salary),
		Status:               input.Status,
		RecruiterContact:     strings.TrimSpace(input.RecruiterContact),
		TeamMemberContact:    strings.TrimSpace(input.TeamMemberContact),
		HiringManagerContact: strings.TrimSpace(input.HiringManagerContact),
		Priority:             priority,
	}, nil
}

// NormalizeDate resolves "today" against now and checks that anything else
// is a real calendar date in YYYY-MM-DD form.
func NormalizeDate(raw string, now time.Time) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyDate
	}

	if strings.EqualFold(trimmed, models.DateToday) {
		return now.Format(models.DateLayout), nil
	}

	parsed, err := time.Parse(models.DateLayout, trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	// time.Parse accepts some inputs that do not round-trip, so require the canonical form
	if parsed.Format(models.DateLayout) != trimmed {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return trimmed, nil
}

// ValidateDate is NormalizeDate for form fields that only need a yes/no answer
func ValidateDate(raw string) error {
	_, err := NormalizeDate(raw, time.Now())
	return err
}
