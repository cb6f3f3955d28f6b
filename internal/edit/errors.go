package edit

import (
	"errors"
	"fmt"
)

// ValidationError reports a mutation whose input breaks a stated invariant.
// The document is left unmodified; the caller may retry with corrected input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrSlotCapacity is returned when aspect-slot resolution runs out of room on
// a path that should be unreachable. It signals a logic inconsistency rather
// than bad input.
var ErrSlotCapacity = errors.New("aspect slot capacity exceeded")
