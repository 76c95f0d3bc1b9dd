package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// RuntimeError is an error returned by a CLI command, with an optional hint
// shown to the user.
type RuntimeError struct {
	msg   string
	cause error
	hint  string
}

// NewRuntimeError returns a new RuntimeError.
func NewRuntimeError(msg string, cause error, hint string) *RuntimeError {
	return &RuntimeError{msg: msg, cause: cause, hint: hint}
}

// Error implements the error interface.
func (e *RuntimeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.cause)
	}
	return e.msg
}

// Unwrap returns the cause of the error.
func (e *RuntimeError) Unwrap() error {
	return e.cause
}

// Hint returns the hint for resolving the error, if any.
func (e *RuntimeError) Hint() string {
	return e.hint
}

// Log logs an error using the default slog logger, extracting metadata if it's
// a StructuredError.
func Log(err error) {
	var serr *StructuredError
	if !errors.As(err, &serr) {
		slog.Error(err.Error())
		return
	}

	args := make([]any, 0, len(serr.metadata)*2+2)

	cause := serr.metadata["cause"]
	if serr.cause != nil {
		cause = serr.cause
	}
	if cause != nil {
		args = append(args, "cause", cause)
	}

	keys := make([]string, 0, len(serr.metadata))
	for k := range serr.metadata {
		if k != "cause" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		args = append(args, k, serr.metadata[k])
	}

	slog.Error(serr.Error(), args...)
}

// Errorf logs err using the default slog logger. If it's a RuntimeError, the
// hint and the metadata of a structured cause are logged as attributes.
func Errorf(err error) {
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		Log(err)
		return
	}

	var fields []any
	var serr *StructuredError
	if errors.As(rerr.cause, &serr) {
		for k, v := range serr.metadata {
			fields = append(fields, k, v)
		}
	}
	if rerr.hint != "" {
		fields = append(fields, "hint", rerr.hint)
	}

	Log(With(err, fields...))
}
