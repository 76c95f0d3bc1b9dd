package env

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned when setting a variable whose name the process
// environment table can't store.
var ErrInvalidKey = errors.New("invalid environment variable name")

// ErrInvalidValue is returned when setting a variable whose value the process
// environment table can't store.
var ErrInvalidValue = errors.New("invalid environment variable value")

// validate applies the same rules as setenv(3).
func validate(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.IndexByte(value, 0) >= 0 {
		return fmt.Errorf("%w: contains NUL byte", ErrInvalidValue)
	}
	return nil
}
