package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	SearchMode                    // Typing into the search box (/)
	AddFormMode                   // Add application form
	EditFormMode                  // Edit application form
	StatusPickerMode              // Status picker for the selected card
	DeleteConfirmMode             // Confirming deletion (y/N)
	ExportMode                    // Choosing the CSV export destination
)

func (m Mode) String() string {
	switch m {
	case SearchMode:
		return "search"
	case AddFormMode:
		return "add"
	case EditFormMode:
		return "edit"
	case StatusPickerMode:
		return "status"
	case DeleteConfirmMode:
		return "delete"
	case ExportMode:
		return "export"
	default:
		return "normal"
	}
}

// UIState manages the user interface state: the selected card, scrolling,
// terminal dimensions and the current interaction mode.
type UIState struct {
	selected     int
	scrollOffset int
	width        int
	height       int
	mode         Mode
}

// NewUIState creates a UIState in normal mode with nothing selected
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

func (s *UIState) Mode() Mode        { return s.mode }
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

func (s *UIState) Width() int  { return s.width }
func (s *UIState) Height() int { return s.height }

// SetWindowSize records the terminal dimensions
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// Selected returns the index of the selected card
func (s *UIState) Selected() int { return s.selected }

// ScrollOffset returns the index of the first visible card
func (s *UIState) ScrollOffset() int { return s.scrollOffset }

// MoveUp selects the previous card, stopping at the first
func (s *UIState) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

// MoveDown selects the next card, stopping at the last of count
func (s *UIState) MoveDown(count int) {
	if s.selected < count-1 {
		s.selected++
	}
}

// Clamp keeps the selection inside a list of count cards and scrolls so it
// stays within a window of visible cards.
func (s *UIState) Clamp(count, visible int) {
	if count == 0 {
		s.selected = 0
		s.scrollOffset = 0
		return
	}
	if s.selected >= count {
		s.selected = count - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}

	if visible < 1 {
		visible = 1
	}
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	}
	if s.selected >= s.scrollOffset+visible {
		s.scrollOffset = s.selected - visible + 1
	}
	if maxOffset := count - visible; s.scrollOffset > maxOffset {
		s.scrollOffset = max(maxOffset, 0)
	}
}

// Select moves the selection to index i. Call Clamp afterwards to keep it in
// range and visible.
func (s *UIState) Select(i int) { s.selected = i }

// ResetSelection moves back to the top of the list
func (s *UIState) ResetSelection() {
	s.selected = 0
	s.scrollOffset = 0
}
