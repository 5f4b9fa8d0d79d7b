package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jobtrack/internal/app"
	"github.com/thenoetrevino/jobtrack/internal/cli/styles"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/database"
	"github.com/thenoetrevino/jobtrack/internal/tui"
)

// Launch starts the TUI application against the database at dbPath.
// An empty dbPath falls back to the config file, then the default location.
func Launch(parent context.Context, dbPath string) error {
	if parent == nil {
		parent = context.Background()
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	if dbPath == "" {
		dbPath = cfg.ResolvedDatabasePath()
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	application := app.New(db, app.WithLogger(slog.Default()))
	model := tui.New(ctx, application, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Let the program restore the terminal before the database closes
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
	}

	return nil
}
