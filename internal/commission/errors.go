package commission

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHasActiveDependents is returned when a total rule cannot be retired
// because non-inactive distribution rules still reference it. There is no
// force path; dependents must be retired first.
var ErrHasActiveDependents = errors.New("total rule has active dependent distribution rules")

// Violation is a single field-level problem in a submitted rule. Field names
// follow the wire payload (snake_case).
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one submission. The
// engine never reports only the first problem; callers can surface the full
// list at once.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// violations is a collecting helper used by the engine.
type violations struct {
	list []Violation
}

func (v *violations) add(field, format string, args ...any) {
	v.list = append(v.list, Violation{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
