package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/jobtrack/internal/config"
	"github.com/thenoetrevino/jobtrack/internal/models"
	"github.com/thenoetrevino/jobtrack/internal/tui/state"
)

// cardHeight is the rendered height of one card, borders included
const cardHeight = 6

// styles holds every lipgloss style the view uses, built once from the theme
type styles struct {
	scheme config.ColorScheme

	title        lipgloss.Style
	subtle       lipgloss.Style
	normal       lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	statsLabel   lipgloss.Style
	searchBox    lipgloss.Style
	confirm      lipgloss.Style
	help         lipgloss.Style
}

func newStyles(scheme config.ColorScheme) styles {
	return styles{
		scheme: scheme,

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),

		subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),

		normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.CardBorder)).
			Padding(0, 1),

		selectedCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(scheme.SelectedBorder)).
			Background(lipgloss.Color(scheme.SelectedBg)).
			Padding(0, 1),

		statsLabel: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),

		searchBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),

		confirm: lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Delete)).
			Foreground(lipgloss.Color(scheme.Delete)).
			Padding(0, 2),

		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
	}
}

func (s styles) status(status models.Status) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.scheme.StatusColor(status))).
		Render("● " + status.String())
}

func (s styles) priority(p models.Priority) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(s.scheme.PriorityColor(p))).
		Render("[" + p.String() + "]")
}

func (s styles) formBox(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 2)
}

func (s styles) notification(level state.NotificationLevel) lipgloss.Style {
	fg, bg := s.scheme.InfoFg, s.scheme.InfoBg
	switch level {
	case state.LevelWarning:
		fg, bg = s.scheme.WarningFg, s.scheme.WarningBg
	case state.LevelError:
		fg, bg = s.scheme.ErrorFg, s.scheme.ErrorBg
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}
