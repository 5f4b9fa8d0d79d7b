package app

import (
	"database/sql"
	"log/slog"

	"github.com/thenoetrevino/jobtrack/internal/browser"
	"github.com/thenoetrevino/jobtrack/internal/database"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
)

// App holds all application services and provides dependency injection.
// This is the main application container shared by the CLI and the TUI.
type App struct {
	db     *sql.DB
	logger *slog.Logger

	ApplicationService applicationservice.Service
	Opener             browser.Opener
}

// New creates a new App with all services initialized.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.opener == nil {
		cfg.opener = browser.NewSystemOpener()
	}

	serviceOpts := []applicationservice.Option{applicationservice.WithLogger(cfg.logger)}
	if cfg.clock != nil {
		serviceOpts = append(serviceOpts, applicationservice.WithClock(cfg.clock))
	}

	return &App{
		db:                 db,
		logger:             cfg.logger,
		ApplicationService: applicationservice.NewService(database.NewRepository(db), serviceOpts...),
		Opener:             cfg.opener,
	}
}

// Logger returns the logger the services were built with
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}
