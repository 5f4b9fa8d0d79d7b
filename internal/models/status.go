package models

import (
	"fmt"
	"strings"
)

// Status is the lifecycle label of an application.
// Any status may be set to any other; there is no transition order.
type Status string

const (
	StatusPending            Status = "Pending"
	StatusApplied            Status = "Applied"
	StatusInterviewScheduled Status = "Interview Scheduled"
	StatusInterviewed        Status = "Interviewed"
	StatusOfferReceived      Status = "Offer Received"
	StatusRejected           Status = "Rejected"
	StatusWithdrawn          Status = "Withdrawn"
)

// Statuses lists every status in display order
var Statuses = []Status{
	StatusPending,
	StatusApplied,
	StatusInterviewScheduled,
	StatusInterviewed,
	StatusOfferReceived,
	StatusRejected,
	StatusWithdrawn,
}

// ParseStatus maps user input to a Status.
// Matching ignores case, surrounding whitespace, and accepts '-' or '_' for spaces
// so that "offer-received" works on the command line.
func ParseStatus(s string) (Status, error) {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, status := range Statuses {
		if strings.EqualFold(string(status), normalized) {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Valid reports whether s is a member of the enumeration
func (s Status) Valid() bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler
func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Scan implements sql.Scanner so rows holding an unknown status fail loudly
func (s *Status) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return s.UnmarshalText([]byte(v))
	case []byte:
		return s.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Status", src)
	}
}
