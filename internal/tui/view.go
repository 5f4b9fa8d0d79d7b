package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jobtrack/internal/models"
	"github.com/thenoetrevino/jobtrack/internal/tui/state"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	sections := []string{m.viewHeader(), m.viewStats()}

	switch m.uiState.Mode() {
	case state.AddFormMode, state.EditFormMode, state.StatusPickerMode, state.ExportMode:
		sections = append(sections, m.viewForm())
	case state.DeleteConfirmMode:
		sections = append(sections, m.viewDeleteConfirm())
	default:
		if m.uiState.Mode() == state.SearchMode || m.appState.Filter() != "" {
			sections = append(sections, m.viewSearch())
		}
		sections = append(sections, m.viewCards())
	}

	if n := m.viewNotifications(); n != "" {
		sections = append(sections, n)
	}
	sections = append(sections, m.viewHelp())

	view.Content = lipgloss.JoinVertical(lipgloss.Left, sections...)
	return view
}

func (m Model) viewHeader() string {
	return m.styles.title.Render("Job Application Tracker")
}

func (m Model) viewStats() string {
	stats := m.appState.Stats()
	item := func(label string, n int) string {
		return m.styles.statsLabel.Render(label+":") + " " + m.styles.normal.Render(fmt.Sprint(n))
	}

	parts := []string{
		item("Total", stats.Total),
		item("Applied", stats.Applied),
		item("Pending", stats.Pending),
		item("Offers", stats.Offers),
		item("Rejected", stats.Rejected),
		m.styles.subtle.Render("sort: " + m.appState.Sort().String()),
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewSearch() string {
	if m.uiState.Mode() == state.SearchMode {
		return m.styles.searchBox.Render(m.search.View())
	}
	return m.styles.subtle.Render(fmt.Sprintf("filter: %q (esc to clear)", m.appState.Filter()))
}

func (m Model) viewCards() string {
	apps := m.appState.Applications()
	if len(apps) == 0 {
		if m.appState.Filter() != "" {
			return m.styles.subtle.Render("No applications match the filter.")
		}
		return m.styles.subtle.Render(fmt.Sprintf("No applications yet. Press %s to add one.", m.config.KeyMappings.AddApplication))
	}

	start := m.uiState.ScrollOffset()
	end := min(start+m.visibleCards(), len(apps))

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		cards = append(cards, m.viewCard(apps[i], i == m.uiState.Selected()))
	}

	if end < len(apps) || start > 0 {
		cards = append(cards, m.styles.subtle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(apps))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) viewCard(a *models.Application, selected bool) string {
	style := m.styles.card
	if selected {
		style = m.styles.selectedCard
	}
	width := m.cardWidth()

	url := a.URL
	if url == "" {
		url = "no url"
	}

	lines := []string{
		m.styles.title.Render(a.JobName) + " " + m.styles.priority(a.Priority),
		m.styles.normal.Render(a.Company) + m.styles.subtle.Render(" · "+a.DateApplied),
		m.styles.status(a.Status),
		m.styles.subtle.Render(url),
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewForm() string {
	if m.formState.Form == nil {
		return ""
	}

	title := "New Application"
	accent := m.config.ColorScheme.Create
	switch m.uiState.Mode() {
	case state.EditFormMode:
		title = "Edit Application"
		accent = m.config.ColorScheme.Edit
	case state.StatusPickerMode:
		title = "Change Status"
		accent = m.config.ColorScheme.Edit
	case state.ExportMode:
		title = "Export CSV"
		accent = m.config.ColorScheme.Accent
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.title.Render(title),
		"",
		m.formState.Form.View(),
	)
	return m.styles.formBox(accent).Width(m.cardWidth()).Render(content)
}

func (m Model) viewDeleteConfirm() string {
	name := "this application"
	if i := m.appState.IndexOf(m.formState.EditingID); i >= 0 {
		a := m.appState.At(i)
		name = fmt.Sprintf("'%s' at %s", a.JobName, a.Company)
	}
	return m.styles.confirm.Render(fmt.Sprintf("Delete %s? [y/N]", name))
}

func (m Model) viewNotifications() string {
	all := m.notificationState.All()
	if len(all) == 0 {
		return ""
	}

	lines := make([]string, 0, len(all))
	for _, n := range all {
		lines = append(lines, m.styles.notification(n.Level).Render(n.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewHelp() string {
	km := m.config.KeyMappings

	var help string
	switch m.uiState.Mode() {
	case state.SearchMode:
		help = "enter keep filter · esc clear"
	case state.AddFormMode, state.EditFormMode, state.StatusPickerMode, state.ExportMode:
		help = "tab/enter next · shift+tab back · esc cancel"
	case state.DeleteConfirmMode:
		help = "y delete · any other key cancels"
	default:
		help = strings.Join([]string{
			km.AddApplication + " add",
			km.EditApplication + " edit",
			km.ChangeStatus + " status",
			km.DeleteApplication + " delete",
			km.OpenURL + " open",
			km.Search + " search",
			km.ToggleSort + " sort",
			km.Export + " export",
			km.Quit + " quit",
		}, " · ")
	}
	return m.styles.help.Render(help)
}
