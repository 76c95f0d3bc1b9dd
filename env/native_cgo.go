//go:build cgo && unix

package env

/*
#include <stdlib.h>

extern char **environ;

static char **get_environ(void) {
	return environ;
}
*/
import "C"

import (
	"strings"
	"unsafe"

	actx "go.hackfix.me/envbridge/app/context"
)

// Native reads variables from the C library environment, i.e. the table
// native libraries loaded into this process see with getenv(3). Writes go
// through the Go runtime, which forwards them to setenv(3) with overwrite
// semantics, so both views stay consistent.
type Native struct{}

var _ actx.Environment = Native{}

// Lookup implements the actx.Environment interface.
func (Native) Lookup(key string) (string, bool) {
	// C.CString would silently truncate the key.
	if strings.IndexByte(key, 0) >= 0 {
		return "", false
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	cval := C.getenv(ckey)
	if cval == nil {
		return "", false
	}

	return C.GoString(cval), true
}

// Set implements the actx.Environment interface.
func (Native) Set(key, value string) error {
	return OS{}.Set(key, value)
}

// SyncFromLibc copies variables from the C library environment into the Go
// runtime, and returns the number of variables that were added or changed.
//
// When Go is built as a shared library and loaded by another runtime (e.g.
// with System.loadLibrary on Android), its copy of the environment is never
// populated from the process envp, so os.Getenv sees nothing.
func SyncFromLibc() int {
	var n int
	for ptr := C.get_environ(); ptr != nil && *ptr != nil; ptr = nextEntry(ptr) {
		key, value, ok := strings.Cut(C.GoString(*ptr), "=")
		if !ok || key == "" {
			continue
		}
		if cur, found := (OS{}).Lookup(key); found && cur == value {
			continue
		}
		if err := (OS{}).Set(key, value); err == nil {
			n++
		}
	}

	return n
}

func nextEntry(ptr **C.char) **C.char {
	return (**C.char)(unsafe.Add(unsafe.Pointer(ptr), unsafe.Sizeof(ptr)))
}
