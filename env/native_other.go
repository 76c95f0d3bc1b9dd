//go:build !cgo || !unix

package env

import (
	actx "go.hackfix.me/envbridge/app/context"
)

// Native is the C library view of the process environment. Without cgo
// there's no separate C library table, so it's equivalent to OS.
type Native struct {
	OS
}

var _ actx.Environment = Native{}

// SyncFromLibc is a no-op without cgo.
func SyncFromLibc() int {
	return 0
}
