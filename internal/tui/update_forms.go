package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/export"
	"github.com/thenoetrevino/jobtrack/internal/models"
	applicationservice "github.com/thenoetrevino/jobtrack/internal/services/application"
	"github.com/thenoetrevino/jobtrack/internal/tui/huhforms"
	"github.com/thenoetrevino/jobtrack/internal/tui/state"
)

func (m Model) startAddForm() (tea.Model, tea.Cmd) {
	m.formState.Clear()
	m.uiState.SetMode(state.AddFormMode)
	m.formState.ApplicationValues = huhforms.NewApplicationValues(applicationservice.Input{})
	m.formState.Form = m.themed(huhforms.CreateApplicationForm("Add application?", m.formState.ApplicationValues))
	return m, m.formState.Form.Init()
}

func (m Model) startEditForm() (tea.Model, tea.Cmd) {
	selected := m.selectedApplication()
	if selected == nil {
		return m, m.notify(state.LevelWarning, "No application selected")
	}

	m.formState.Clear()
	m.uiState.SetMode(state.EditFormMode)
	m.formState.EditingID = selected.ID
	m.formState.ApplicationValues = huhforms.NewApplicationValues(applicationservice.InputFrom(selected))
	m.formState.Form = m.themed(huhforms.CreateApplicationForm("Save changes?", m.formState.ApplicationValues))
	return m, m.formState.Form.Init()
}

func (m Model) startStatusForm() (tea.Model, tea.Cmd) {
	selected := m.selectedApplication()
	if selected == nil {
		return m, m.notify(state.LevelWarning, "No application selected")
	}

	m.formState.Clear()
	m.uiState.SetMode(state.StatusPickerMode)
	m.formState.EditingID = selected.ID
	m.formState.Status = selected.Status
	m.formState.Form = m.themed(huhforms.CreateStatusForm(&m.formState.Status))
	return m, m.formState.Form.Init()
}

func (m Model) themed(form *huh.Form) *huh.Form {
	scheme := m.config.ColorScheme
	accent := scheme.Create
	switch m.uiState.Mode() {
	case state.EditFormMode, state.StatusPickerMode:
		accent = scheme.Edit
	case state.ExportMode:
		accent = scheme.Accent
	}
	return form.WithTheme(huhforms.CreateTheme(scheme, accent))
}

// closeForm returns to the list, discarding the form
func (m Model) closeForm() {
	m.formState.Clear()
	m.uiState.SetMode(state.NormalMode)
}

// forwardToForm passes msg to the active form. It reports whether the user
// cancelled with esc or the form aborted.
func (m Model) forwardToForm(msg tea.Msg) (tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyPressMsg); ok && key.String() == "esc" {
		return nil, true
	}

	model, cmd := m.formState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.formState.Form = form
	}
	return cmd, m.formState.Form.State == huh.StateAborted
}

func (m Model) updateApplicationForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, cancelled := m.forwardToForm(msg)
	if cancelled {
		m.closeForm()
		return m, nil
	}
	if m.formState.Form.State != huh.StateCompleted {
		return m, cmd
	}

	if !m.formState.ApplicationValues.Confirm {
		m.closeForm()
		return m, m.notify(state.LevelInfo, "Cancelled")
	}
	return m.submitApplicationForm()
}

// submitApplicationForm saves the add or edit form. A validation failure
// reopens the form with the entered values so nothing is lost.
func (m Model) submitApplicationForm() (tea.Model, tea.Cmd) {
	ctx, cancel := m.DbContext()
	defer cancel()

	values := m.formState.ApplicationValues
	svc := m.app.ApplicationService

	var (
		id      int
		err     error
		message string
	)
	if m.uiState.Mode() == state.EditFormMode {
		id = m.formState.EditingID
		err = svc.UpdateApplication(ctx, id, values.Input())
		message = "Application updated"
	} else {
		var created *models.Application
		created, err = svc.CreateApplication(ctx, values.Input())
		if err == nil {
			id = created.ID
		}
		message = "Application added"
	}

	if err != nil {
		if errors.Is(err, applicationservice.ErrValidation) {
			return m.reopenApplicationForm(err)
		}
		slog.Error("failed to save application", "id", id, "error", err)
		m.closeForm()
		return m, m.notifyFailure("Failed to save application", err)
	}

	m.closeForm()
	m.reload()
	m.selectID(id)
	return m, m.notify(state.LevelInfo, message)
}

func (m Model) reopenApplicationForm(err error) (tea.Model, tea.Cmd) {
	title := "Add application?"
	if m.uiState.Mode() == state.EditFormMode {
		title = "Save changes?"
	}
	m.formState.ApplicationValues.Confirm = true
	m.formState.Form = m.themed(huhforms.CreateApplicationForm(title, m.formState.ApplicationValues))
	return m, tea.Batch(m.formState.Form.Init(), m.notify(state.LevelError, err.Error()))
}

func (m Model) updateStatusForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, cancelled := m.forwardToForm(msg)
	if cancelled {
		m.closeForm()
		return m, nil
	}
	if m.formState.Form.State != huh.StateCompleted {
		return m, cmd
	}
	return m.submitStatus()
}

func (m Model) submitStatus() (tea.Model, tea.Cmd) {
	ctx, cancel := m.DbContext()
	defer cancel()

	id, status := m.formState.EditingID, m.formState.Status
	m.closeForm()

	if err := m.app.ApplicationService.UpdateStatus(ctx, id, status); err != nil {
		slog.Error("failed to update status", "id", id, "status", status, "error", err)
		return m, m.notifyFailure("Failed to update status", err)
	}

	m.reload()
	m.selectID(id)
	return m, m.notify(state.LevelInfo, "Status set to "+status.String())
}

// startExportForm asks for the export destination, suggesting a dated file
// in the configured export directory.
func (m Model) startExportForm() (tea.Model, tea.Cmd) {
	m.formState.Clear()
	m.uiState.SetMode(state.ExportMode)
	m.formState.ExportPath = filepath.Join(m.config.ResolvedExportDir(), export.DefaultFileName(time.Now()))
	m.formState.Form = m.themed(huhforms.CreateExportForm(&m.formState.ExportPath))
	return m, m.formState.Form.Init()
}

func (m Model) updateExportForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd, cancelled := m.forwardToForm(msg)
	if cancelled {
		m.closeForm()
		return m, m.notify(state.LevelInfo, "Export cancelled")
	}
	if m.formState.Form.State != huh.StateCompleted {
		return m, cmd
	}
	return m.submitExport()
}

// submitExport writes the CSV. On failure the prompt reopens with the same
// path so it can be corrected.
func (m Model) submitExport() (tea.Model, tea.Cmd) {
	ctx, cancel := m.DbContext()
	defer cancel()

	path := config.ExpandHome(strings.TrimSpace(m.formState.ExportPath))
	if path == "" {
		return m.reopenExportForm(huhforms.ErrEmptyExportPath)
	}

	rows, err := export.ToFile(ctx, m.app.ApplicationService, path)
	if err != nil {
		slog.Error("failed to export applications", "path", path, "error", err)
		return m.reopenExportForm(fmt.Errorf("export failed: %w", err))
	}

	m.closeForm()
	return m, m.notify(state.LevelInfo, fmt.Sprintf("Exported %d application(s) to %s", rows, path))
}

func (m Model) reopenExportForm(err error) (tea.Model, tea.Cmd) {
	m.formState.Form = m.themed(huhforms.CreateExportForm(&m.formState.ExportPath))
	return m, tea.Batch(m.formState.Form.Init(), m.notify(state.LevelError, err.Error()))
}
