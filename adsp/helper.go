// Package adsp manages ADSP_LIBRARY_PATH, which the Hexagon DSP runtime reads
// to locate skeleton libraries shipped in the application's native library
// directory.
package adsp

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mandelsoft/vfs/pkg/vfs"

	actx "go.hackfix.me/envbridge/app/context"
	"go.hackfix.me/envbridge/bridge"
)

// PathFileName is the name of the file the library path is persisted to, so
// that native code which starts before the variable is set can read it.
const PathFileName = "adsp_library_path.txt"

// Helper sets and verifies ADSP_LIBRARY_PATH through a bridge.
type Helper struct {
	bridge      *bridge.Bridge
	fs          vfs.FileSystem
	filesDir    string
	extFilesDir string
	logger      *slog.Logger
}

// NewHelper returns a new Helper that uses b to access the environment.
func NewHelper(b *bridge.Bridge, opts ...Option) (*Helper, error) {
	if b == nil {
		return nil, errors.New("bridge is required")
	}

	h := &Helper{bridge: b}

	opts = append(DefaultOptions(), opts...)
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}

	return h, nil
}

// SetLibraryPath sets ADSP_LIBRARY_PATH to nativeLibDir, and persists it to
// the configured files directories. The path is persisted even if setting the
// variable fails, so that native code can still find it. Failing to persist
// the value is logged, but not returned.
func (h *Helper) SetLibraryPath(nativeLibDir string) error {
	if nativeLibDir == "" {
		return errors.New("native library directory is required")
	}

	h.logger.Info("native library path", "path", nativeLibDir)

	err := h.bridge.Set(bridge.KnownPathVariable, nativeLibDir)
	status := "success"
	if err != nil {
		status = "failed"
	}
	h.logger.Info(fmt.Sprintf("setting %s via bridge", bridge.KnownPathVariable), "status", status)

	if h.fs != nil {
		for _, dir := range []string{h.filesDir, h.extFilesDir} {
			if dir == "" {
				continue
			}
			if werr := h.writePathFile(dir, nativeLibDir); werr != nil {
				h.logger.Error(fmt.Sprintf("failed writing %s to file", bridge.KnownPathVariable),
					"dir", dir, "error", werr)
			}
		}
	}

	if err != nil {
		return fmt.Errorf("failed setting %s: %w", bridge.KnownPathVariable, err)
	}

	return nil
}

// LibraryPath returns the current value of ADSP_LIBRARY_PATH. If the variable
// is unset or empty, it falls back to the persisted value.
func (h *Helper) LibraryPath() sql.Null[string] {
	if path, err := h.bridge.Get(bridge.KnownPathVariable); err == nil && path != "" {
		return sql.Null[string]{V: path, Valid: true}
	}

	return h.readPathFile()
}

// Verify checks whether ADSP_LIBRARY_PATH is visible both from the Go
// runtime's environment and from the native environment the bridge uses.
func (h *Helper) Verify(runtime actx.Environment) Verification {
	var v Verification

	if path, ok := runtime.Lookup(bridge.KnownPathVariable); ok && path != "" {
		v.Path = sql.Null[string]{V: path, Valid: true}
	} else {
		v.Path = h.readPathFile()
	}
	v.FromRuntime = v.Path.Valid && v.Path.V != ""
	v.FromNative = h.bridge.VerifyKnownPathVariable()

	return v
}

func (h *Helper) pathFile() string {
	return filepath.Join(h.filesDir, PathFileName)
}

func (h *Helper) writePathFile(dir, path string) error {
	if err := h.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed creating files directory: %w", err)
	}
	file := filepath.Join(dir, PathFileName)
	if err := vfs.WriteFile(h.fs, file, []byte(path), 0o644); err != nil {
		return fmt.Errorf("failed writing path file: %w", err)
	}

	h.logger.Info(fmt.Sprintf("wrote %s to file", bridge.KnownPathVariable), "file", file)

	return nil
}

func (h *Helper) readPathFile() sql.Null[string] {
	if h.fs == nil {
		return sql.Null[string]{}
	}

	data, err := vfs.ReadFile(h.fs, h.pathFile())
	if err != nil {
		if !vfs.IsErrNotExist(err) {
			h.logger.Warn("failed reading path file", "file", h.pathFile(), "error", err)
		}
		return sql.Null[string]{}
	}

	path := strings.TrimSpace(string(data))
	if path == "" {
		return sql.Null[string]{}
	}

	return sql.Null[string]{V: path, Valid: true}
}
