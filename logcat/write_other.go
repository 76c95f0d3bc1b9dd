//go:build !android || !cgo

package logcat

import "io"

// PlatformWriter returns the function the Handler writes with by default.
// There is no system log on this platform, so messages are written to w in
// the brief format.
func PlatformWriter(w io.Writer) WriteFunc {
	return BriefWriter(w)
}
