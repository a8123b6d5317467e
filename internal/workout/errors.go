package workout

import (
	"fmt"

	"github.com/repkit/repkit/internal/errors"
)

// ErrNotFound signals a dangling identity reference, e.g. a template or
// exercise ID that does not resolve. Operations failing with ErrNotFound
// leave the store untouched.
var ErrNotFound = errors.NewSentinel("not found")

// ErrAllSetsDone signals that every set of a session item has already been
// completed. It is a recoverable condition: the already-completed sets are
// left unchanged.
var ErrAllSetsDone = errors.NewSentinel("every set already completed")

// ValidationError reports bad user input such as an empty template name or a
// duplicate exercise name. The failed operation is a no-op.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GenerationError reports an end-to-end failure of the AI plan generation
// call: missing credentials, transport failure or a malformed response. No
// partial plan is returned alongside it.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return "generate plan: " + e.Reason + ": " + e.Err.Error()
	}
	return "generate plan: " + e.Reason
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// UnresolvedWarning records an AI-suggested exercise that has no match in
// the library. It is non-fatal: the rest of the plan is still constructed.
type UnresolvedWarning struct {
	ExerciseName string
}

func (w UnresolvedWarning) String() string {
	return fmt.Sprintf("exercise %q not found in library", w.ExerciseName)
}
