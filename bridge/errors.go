package bridge

import "errors"

var (
	// ErrInvalidInput is returned when a required argument is absent.
	ErrInvalidInput = errors.New("name or value is null")
	// ErrMarshal is returned when text received across the FFI boundary
	// couldn't be copied into a native buffer.
	ErrMarshal = errors.New("failed to get string UTF chars")
	// ErrPrimitive is returned when the environment rejects a write.
	ErrPrimitive = errors.New("failed setting environment variable")
	// ErrNotFound is returned when a variable doesn't exist.
	ErrNotFound = errors.New("environment variable not found")
)
