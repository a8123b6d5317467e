// Package errors provides error wrapping with slog annotations and source
// locations so that failures can be logged with full context at the edge of
// the application instead of threading loggers through every call site.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
)

// AnnotatedError carries a message, an optional cause, slog attributes and
// the source location of the wrap site.
type AnnotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	source      string
}

// Wrap annotates err with a message and optional slog attributes. The source
// location of the caller is recorded for logging with [SlogError].
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &AnnotatedError{
		msg:         msg,
		err:         err,
		annotations: annotations,
		source:      callerSource(),
	}
}

// New creates a new annotated error with the source location of the caller.
func New(msg string, annotations ...slog.Attr) error {
	return &AnnotatedError{
		msg:         msg,
		err:         nil,
		annotations: annotations,
		source:      callerSource(),
	}
}

// NewSentinel creates an error meant to be used as a package-level sentinel.
// Sentinels carry no source location since their creation site (a var block)
// is not interesting.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// DecoratePanic converts a recovered panic value into an error whose source
// location points at the panic site rather than the recover site.
func DecoratePanic(excp any) error {
	if excp == nil {
		return nil
	}
	return &AnnotatedError{
		msg:    fmt.Sprintf("panic: %v", excp),
		source: panicSource(),
	}
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap returns the wrapped error.
func (e *AnnotatedError) Unwrap() error {
	return e.err
}

// SlogError renders err as a grouped slog attribute containing the message,
// the outermost wrap site and all annotations collected along the chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	var (
		annotations []slog.Attr
		source      string
		annotated   *AnnotatedError
	)
	for e := err; errors.As(e, &annotated); e = annotated.Unwrap() {
		annotations = append(annotations, annotated.annotations...)
		if source == "" {
			source = annotated.source
		}
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Attr{Key: "annotations", Value: slog.GroupValue(annotations...)})
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// callerSource returns the file:line of the first stack frame outside this
// package.
func callerSource() string {
	pcs := make([]uintptr, 16) //nolint:mnd // enough frames to escape this package.
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "annotatederror.go") &&
			!strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return "unknown"
}

// panicSource returns the file:line of the frame that panicked. It walks past
// runtime.gopanic so the location points at the panic statement instead of
// the deferred recover handler.
func panicSource() string {
	pcs := make([]uintptr, 32) //nolint:mnd // panicking stacks run deep.
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	seenPanic := false
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			break
		}
	}
	return "unknown"
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join wraps the given errors into a single error.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
