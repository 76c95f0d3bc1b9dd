package adsp

import (
	"database/sql"
	"fmt"
	"strings"
)

// Verification is the result of checking ADSP_LIBRARY_PATH from both the Go
// runtime and the native side.
type Verification struct {
	FromRuntime bool
	FromNative  bool
	Path        sql.Null[string]
}

// FullyVerified reports whether the variable is visible from both sides.
func (v Verification) FullyVerified() bool {
	return v.FromRuntime && v.FromNative
}

// String returns a human-readable summary of the verification.
func (v Verification) String() string {
	status := func(ok bool) string {
		if ok {
			return "set"
		}
		return "not set"
	}
	path := "null"
	if v.Path.Valid {
		path = v.Path.V
	}

	var sb strings.Builder
	sb.WriteString("ADSP_LIBRARY_PATH verification:\n")
	fmt.Fprintf(&sb, "  Runtime side: %s\n", status(v.FromRuntime))
	fmt.Fprintf(&sb, "  Native side: %s\n", status(v.FromNative))
	fmt.Fprintf(&sb, "  Path: %s", path)

	return sb.String()
}
