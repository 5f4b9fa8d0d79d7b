package models

import "errors"

// Domain-specific errors shared by the store and the views
var (
	// ErrApplicationNotFound indicates that no row matched the given ID
	ErrApplicationNotFound = errors.New("application not found")

	// ErrUnknownStatus indicates a status outside the fixed enumeration
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUnknownPriority indicates a priority other than High, Medium or Low
	ErrUnknownPriority = errors.New("unknown priority")
)
