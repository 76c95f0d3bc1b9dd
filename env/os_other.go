//go:build !unix

package env

import (
	"os"

	actx "go.hackfix.me/envbridge/app/context"
)

// OS is a pass-through to the process environment table of the Go runtime.
type OS struct{}

var _ actx.Environment = OS{}

// Lookup implements the actx.Environment interface.
func (OS) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set implements the actx.Environment interface.
func (OS) Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}
	//nolint:wrapcheck // The errno is the result.
	return os.Setenv(key, value)
}
