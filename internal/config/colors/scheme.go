package colors

import "github.com/thenoetrevino/jobtrack/internal/models"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset,omitempty"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent,omitempty"`

	// Semantic colors
	Create string `yaml:"create,omitempty"` // add form
	Edit   string `yaml:"edit,omitempty"`   // edit form, status picker
	Delete string `yaml:"delete,omitempty"` // delete confirmation

	// Cards
	CardBorder     string `yaml:"card_border,omitempty"`
	SelectedBorder string `yaml:"selected_border,omitempty"`
	SelectedBg     string `yaml:"selected_bg,omitempty"`

	// Text colors
	Title  string `yaml:"title,omitempty"`
	Subtle string `yaml:"subtle,omitempty"`
	Normal string `yaml:"normal,omitempty"`

	// Application status colors
	StatusPending   string `yaml:"status_pending,omitempty"`
	StatusApplied   string `yaml:"status_applied,omitempty"`
	StatusInterview string `yaml:"status_interview,omitempty"`
	StatusOffer     string `yaml:"status_offer,omitempty"`
	StatusRejected  string `yaml:"status_rejected,omitempty"`
	StatusWithdrawn string `yaml:"status_withdrawn,omitempty"`

	// Priority badges
	PriorityHigh   string `yaml:"priority_high,omitempty"`
	PriorityMedium string `yaml:"priority_medium,omitempty"`
	PriorityLow    string `yaml:"priority_low,omitempty"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg,omitempty"`
	InfoBg    string `yaml:"info_bg,omitempty"`
	WarningFg string `yaml:"warning_fg,omitempty"`
	WarningBg string `yaml:"warning_bg,omitempty"`
	ErrorFg   string `yaml:"error_fg,omitempty"`
	ErrorBg   string `yaml:"error_bg,omitempty"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// fields lists every color slot so defaults and merges stay in one place.
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Create, &c.Edit, &c.Delete,
		&c.CardBorder, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.StatusPending, &c.StatusApplied, &c.StatusInterview,
		&c.StatusOffer, &c.StatusRejected, &c.StatusWithdrawn,
		&c.PriorityHigh, &c.PriorityMedium, &c.PriorityLow,
		&c.InfoFg, &c.InfoBg, &c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst, src := c.fields(), preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}

	dst, src := c.fields(), other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}

// StatusColor returns the color used to render an application status
func (c *ColorScheme) StatusColor(s models.Status) string {
	switch s {
	case models.StatusPending:
		return c.StatusPending
	case models.StatusApplied:
		return c.StatusApplied
	case models.StatusInterviewScheduled, models.StatusInterviewed:
		return c.StatusInterview
	case models.StatusOfferReceived:
		return c.StatusOffer
	case models.StatusRejected:
		return c.StatusRejected
	case models.StatusWithdrawn:
		return c.StatusWithdrawn
	default:
		return c.Normal
	}
}

// PriorityColor returns the badge color for a priority
func (c *ColorScheme) PriorityColor(p models.Priority) string {
	switch p {
	case models.PriorityHigh:
		return c.PriorityHigh
	case models.PriorityMedium:
		return c.PriorityMedium
	case models.PriorityLow:
		return c.PriorityLow
	default:
		return c.Subtle
	}
}
