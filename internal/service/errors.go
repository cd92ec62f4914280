package service

import (
	"errors"
	"strings"
)

// ErrConflictingIdentity is returned when a request names the target
// identity in both the route and the body.
var ErrConflictingIdentity = errors.New("id must only be supplied in the URL for this operation")

// ValidationError reports input rejected before any store call.
type ValidationError struct {
	// Fields lists the offending input fields.
	Fields []string
	// Reason is a human readable explanation.
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid data: " + e.Reason
	}
	return "invalid data: " + strings.Join(e.Fields, ", ") + ": " + e.Reason
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Outcome tells the caller which branch a PUT resolved to.
type Outcome int

const (
	// Updated means an existing row was modified.
	Updated Outcome = iota + 1
	// Created means a new row was inserted, possibly as a fallback.
	Created
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case Created:
		return "created"
	default:
		return "unknown"
	}
}
