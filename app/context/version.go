package context

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// VersionInfo holds build metadata of the running binary.
type VersionInfo struct {
	Semantic  string
	Commit    string
	Dirty     bool
	GoVersion string
}

// String returns the version in a human-readable format.
func (v *VersionInfo) String() string {
	if v == nil {
		return "(unknown)"
	}
	var sb strings.Builder
	sb.WriteString(v.Semantic)
	if v.Commit != "" {
		commit := v.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		fmt.Fprintf(&sb, " (%s", commit)
		if v.Dirty {
			sb.WriteString("-dirty")
		}
		sb.WriteString(")")
	}
	if v.GoVersion != "" {
		fmt.Fprintf(&sb, " %s", v.GoVersion)
	}

	return sb.String()
}

// GetVersion returns the version information embedded by the Go toolchain.
func GetVersion() *VersionInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return &VersionInfo{Semantic: "(devel)"}
	}

	vi := &VersionInfo{
		Semantic:  bi.Main.Version,
		GoVersion: bi.GoVersion,
	}
	if vi.Semantic == "" {
		vi.Semantic = "(devel)"
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			vi.Commit = s.Value
		case "vcs.modified":
			vi.Dirty = s.Value == "true"
		}
	}

	return vi
}
