package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/jobtrack/internal/models"
	"github.com/thenoetrevino/jobtrack/internal/tui/huhforms"
)

// FormState holds the huh form currently on screen and the values it
// writes into.
type FormState struct {
	Form *huh.Form

	// ApplicationValues backs the add and edit forms
	ApplicationValues *huhforms.ApplicationValues
	// Status backs the status picker
	Status models.Status

	// ExportPath backs the export destination prompt
	ExportPath string

	// EditingID is the application being edited, re-statused or deleted
	EditingID int
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Clear drops the form and its values
func (s *FormState) Clear() {
	s.Form = nil
	s.ApplicationValues = nil
	s.Status = ""
	s.ExportPath = ""
	s.EditingID = 0
}
