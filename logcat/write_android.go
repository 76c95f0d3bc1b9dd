//go:build android && cgo

package logcat

/*
#cgo LDFLAGS: -llog
#include <android/log.h>
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"io"
	"unsafe"
)

// PlatformWriter returns the function the Handler writes with by default,
// which writes to the Android log. The writer is ignored.
func PlatformWriter(_ io.Writer) WriteFunc {
	return androidLogWrite
}

func androidLogWrite(prio Priority, tag, msg string) error {
	ctag := C.CString(tag)
	defer C.free(unsafe.Pointer(ctag))
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))

	if C.__android_log_write(C.int(prio), ctag, cmsg) < 0 {
		return errors.New("failed writing to the Android log")
	}

	return nil
}
