package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors returned as values so the route layer can map each onto a
// status code deterministically.
var (
	ErrPackageNotFound  = errors.New("package not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCapacityExceeded = errors.New("package capacity exceeded")
	ErrNotOwner         = errors.New("booking does not belong to caller")
)

// RuleViolation names one failed validation rule with a human-readable message.
type RuleViolation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every rule violation found in a booking request.
type ValidationError struct {
	Violations []RuleViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("booking request invalid: %s", strings.Join(msgs, "; "))
}
