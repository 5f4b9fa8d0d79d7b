package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/jobtrack/internal/app"
	"github.com/thenoetrevino/jobtrack/internal/cli/styles"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	// owned is false when the App was injected and belongs to the caller
	owned bool
}

type appContextKey struct{}

// WithApp returns a context carrying an existing App. Commands run with this
// context reuse it instead of opening the database themselves.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// GetCLIFromContext returns a CLI around the App stored in ctx, or opens a new
// one at dbPath when the context carries none.
func GetCLIFromContext(ctx context.Context, dbPath string) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appContextKey{}).(*app.App); ok && a != nil {
			return &CLI{App: a}, nil
		}
	}
	return NewCLI(ctx, dbPath)
}

// NewCLI opens the database and builds the application container.
// An empty dbPath falls back to the config file, then the default location.
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	styles.Init(cfg.ColorScheme)

	if dbPath == "" {
		dbPath = cfg.ResolvedDatabasePath()
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		App:   app.New(db),
		owned: true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
