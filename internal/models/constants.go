package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// DATE CONSTANTS
// ============================================================================

// DateLayout is the calendar-date format stored in date_applied
const DateLayout = "2006-01-02"

// DateToday is the literal accepted in place of a date and normalized at save time
const DateToday = "today"

// TimestampLayout is how created_at is rendered in exports and listings
const TimestampLayout = "2006-01-02 15:04:05"

// ============================================================================
// SORT CONSTANTS
// ============================================================================

// SortKey selects the ordering of a listing
type SortKey int

const (
	// SortDateApplied orders by date_applied, most recent first
	SortDateApplied SortKey = iota
	// SortPriority orders High, Medium, Low, then by date_applied descending
	SortPriority
)

// ParseSortKey maps "date" / "priority" (and their display names) to a SortKey
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date", "date applied", "date_applied", "date-applied":
		return SortDateApplied, nil
	case "priority":
		return SortPriority, nil
	default:
		return SortDateApplied, fmt.Errorf("invalid sort '%s' (must be: date, priority)", s)
	}
}

func (k SortKey) String() string {
	if k == SortPriority {
		return "Priority"
	}
	return "Date Applied"
}
