//go:build unix

package env

import (
	"golang.org/x/sys/unix"

	actx "go.hackfix.me/envbridge/app/context"
)

// OS is a pass-through to the process environment table of the Go runtime.
// When cgo is linked, writes are propagated to the C library environment as
// well, so they're visible to native code loaded into the same process.
type OS struct{}

var _ actx.Environment = OS{}

// Lookup implements the actx.Environment interface.
func (OS) Lookup(key string) (string, bool) {
	return unix.Getenv(key)
}

// Set implements the actx.Environment interface.
func (OS) Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	//nolint:wrapcheck // The errno is the result.
	return unix.Setenv(key, value)
}
