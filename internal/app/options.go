package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/jobtrack/internal/browser"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	clock  func() time.Time
	opener browser.Opener
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock sets the clock used to resolve "today" dates
func WithClock(now func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = now
	}
}

// WithOpener replaces the system browser opener
func WithOpener(opener browser.Opener) Option {
	return func(cfg *appConfig) {
		cfg.opener = opener
	}
}
