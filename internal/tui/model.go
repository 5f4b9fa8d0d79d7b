package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jobtrack/internal/app"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
	"github.com/thenoetrevino/jobtrack/internal/tui/state"
)

const (
	dbTimeout        = 5 * time.Second
	notificationTTL  = 4 * time.Second
	defaultCardWidth = 72
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	app    *app.App
	config *config.Config
	styles styles

	appState          *state.AppState
	uiState           *state.UIState
	formState         *state.FormState
	notificationState *state.NotificationState
	search            textinput.Model
}

// clearNotificationMsg expires the notification with the given id
type clearNotificationMsg struct {
	id int
}

// New creates the TUI model and loads the first page of applications
func New(ctx context.Context, application *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "job, company or status"
	search.CharLimit = 100

	m := Model{
		ctx:               ctx,
		app:               application,
		config:            cfg,
		styles:            newStyles(cfg.ColorScheme),
		appState:          state.NewAppState(cfg.SortKey()),
		uiState:           state.NewUIState(),
		formState:         state.NewFormState(),
		notificationState: state.NewNotificationState(),
		search:            search,
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// DbContext returns a context bounded by the per-operation timeout
func (m Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.ctx, dbTimeout)
}

// reload re-queries the list and stats. Every mutation calls it, so the
// screen always reflects the store.
func (m Model) reload() {
	ctx, cancel := m.DbContext()
	defer cancel()

	svc := m.app.ApplicationService
	apps, err := svc.ListApplications(ctx, applicationservice.ListOptions{
		Filter: m.appState.Filter(),
		Sort:   m.appState.Sort(),
	})
	if err != nil {
		slog.Error("failed to load applications", "error", err)
		m.notificationState.Add(state.LevelError, "Failed to load applications: "+err.Error())
		return
	}
	m.appState.SetApplications(apps)

	stats, err := svc.GetStats(ctx)
	if err != nil {
		slog.Error("failed to load stats", "error", err)
		m.notificationState.Add(state.LevelError, "Failed to load stats: "+err.Error())
	} else {
		m.appState.SetStats(stats)
	}

	m.uiState.Clamp(len(apps), m.visibleCards())
}

// selectID moves the selection to the application with id when it is listed
func (m Model) selectID(id int) {
	if i := m.appState.IndexOf(id); i >= 0 {
		m.uiState.Select(i)
		m.uiState.Clamp(len(m.appState.Applications()), m.visibleCards())
	}
}

// notify shows a notification and schedules its removal
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.notificationState.Add(level, message)
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return clearNotificationMsg{id: id}
	})
}

// visibleCards is how many cards fit between the header and the footer
func (m Model) visibleCards() int {
	if m.uiState.Height() == 0 {
		return 5
	}
	// title, stats, search line, notifications, help
	chrome := 6 + len(m.notificationState.All())
	return max((m.uiState.Height()-chrome)/cardHeight, 1)
}

func (m Model) cardWidth() int {
	if w := m.uiState.Width(); w > 0 {
		return min(w-2, 100)
	}
	return defaultCardWidth
}

// selectedApplication returns the highlighted card, or nil for an empty list
func (m Model) selectedApplication() *models.Application {
	return m.appState.At(m.uiState.Selected())
}
