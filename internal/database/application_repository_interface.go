package database

import (
	"context"

	"github.com/thenoetrevino/jobtrack/internal/models"
)

// ApplicationReader defines read operations for applications.
type ApplicationReader interface {
	GetApplicationByID(ctx context.Context, id int) (*models.Application, error)
	ListApplications(ctx context.Context, filter string, sort models.SortKey) ([]*models.Application, error)
	GetApplicationStats(ctx context.Context) (models.Stats, error)
	GetAllApplicationsForExport(ctx context.Context) ([]*models.Application, error)
}

// ApplicationWriter defines write operations for applications.
type ApplicationWriter interface {
	CreateApplication(ctx context.Context, fields models.ApplicationFields) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int, fields models.ApplicationFields) error
	UpdateApplicationStatus(ctx context.Context, id int, status models.Status) error
	DeleteApplication(ctx context.Context, id int) error
}

// ApplicationRepository combines all application-related operations.
type ApplicationRepository interface {
	ApplicationReader
	ApplicationWriter
}
