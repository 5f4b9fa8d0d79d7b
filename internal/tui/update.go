package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/jobtrack/internal/browser"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
	"github.com/thenoetrevino/jobtrack/internal/tui/state"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)
		m.uiState.Clamp(len(m.appState.Applications()), m.visibleCards())
		return m, nil

	case clearNotificationMsg:
		m.notificationState.Remove(msg.id)
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.AddFormMode, state.EditFormMode:
		return m.updateApplicationForm(msg)
	case state.StatusPickerMode:
		return m.updateStatusForm(msg)
	case state.ExportMode:
		return m.updateExportForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.uiState.Mode() == state.SearchMode {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.uiState.Mode() {
	case state.SearchMode:
		return m.handleSearchMode(keyMsg)
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	count := len(m.appState.Applications())

	switch key := msg.String(); key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit

	case km.NextCard, "down":
		m.uiState.MoveDown(count)
		m.uiState.Clamp(count, m.visibleCards())
		return m, nil

	case km.PrevCard, "up":
		m.uiState.MoveUp()
		m.uiState.Clamp(count, m.visibleCards())
		return m, nil

	case km.Search:
		m.uiState.SetMode(state.SearchMode)
		m.search.SetValue(m.appState.Filter())
		cmd := m.search.Focus()
		return m, cmd

	case km.ToggleSort:
		m.appState.ToggleSort()
		m.uiState.ResetSelection()
		m.reload()
		return m, m.notify(state.LevelInfo, "Sorted by "+m.appState.Sort().String())

	case km.AddApplication:
		return m.startAddForm()

	case km.EditApplication:
		return m.startEditForm()

	case km.ChangeStatus:
		return m.startStatusForm()

	case km.DeleteApplication:
		if m.selectedApplication() == nil {
			return m, m.notify(state.LevelWarning, "No application selected")
		}
		m.formState.EditingID = m.selectedApplication().ID
		m.uiState.SetMode(state.DeleteConfirmMode)
		return m, nil

	case km.OpenURL:
		return m.openSelected()

	case km.Export:
		return m.startExportForm()

	case "esc":
		if m.appState.Filter() != "" {
			m.applyFilter("")
		}
		return m, nil
	}

	return m, nil
}

// handleSearchMode filters live as the user types. Enter keeps the filter,
// esc clears it.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.uiState.SetMode(state.NormalMode)
		m.applyFilter("")
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.appState.Filter() {
		m.applyFilter(m.search.Value())
	}
	return m, cmd
}

func (m Model) applyFilter(filter string) {
	m.appState.SetFilter(filter)
	m.uiState.ResetSelection()
	m.reload()
}

func (m Model) handleDeleteConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	id := m.formState.EditingID
	m.formState.Clear()
	m.uiState.SetMode(state.NormalMode)

	switch msg.String() {
	case "y", "Y":
	default:
		return m, m.notify(state.LevelInfo, "Delete cancelled")
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	if err := m.app.ApplicationService.DeleteApplication(ctx, id); err != nil {
		slog.Error("failed to delete application", "id", id, "error", err)
		return m, m.notifyFailure("Failed to delete application", err)
	}

	m.reload()
	return m, m.notify(state.LevelInfo, "Application deleted")
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	selected := m.selectedApplication()
	if selected == nil {
		return m, m.notify(state.LevelWarning, "No application selected")
	}

	if err := m.app.Opener.Open(selected.URL); err != nil {
		if errors.Is(err, browser.ErrNoURL) {
			return m, m.notify(state.LevelWarning, "No URL recorded for this application")
		}
		slog.Error("failed to open url", "id", selected.ID, "url", selected.URL, "error", err)
		return m, m.notify(state.LevelError, "Failed to open URL: "+err.Error())
	}
	return m, m.notify(state.LevelInfo, "Opened "+selected.URL)
}

// notifyFailure reports a failed service call. A record that vanished is
// reported as such and dropped from the list; anything else keeps the
// underlying message.
func (m Model) notifyFailure(action string, err error) tea.Cmd {
	if errors.Is(err, applicationservice.ErrNotFound) {
		m.reload()
		return m.notify(state.LevelError, "Application no longer exists")
	}
	return m.notify(state.LevelError, action+": "+err.Error())
}
