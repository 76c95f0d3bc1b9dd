package adsp

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"

	aerrors "go.hackfix.me/envbridge/app/errors"
)

// Option is a function that allows configuring the Helper.
type Option func(*Helper) error

// WithFilesDir persists the library path to PathFileName in dir on fs.
func WithFilesDir(fs vfs.FileSystem, dir string) Option {
	return func(h *Helper) error {
		if fs == nil {
			return errors.New("filesystem is required")
		}
		if !filepath.IsAbs(dir) {
			return aerrors.NewWith("files directory must be an absolute path", "dir", dir)
		}
		h.fs = fs
		h.filesDir = filepath.Clean(dir)
		return nil
	}
}

// WithExternalFilesDir also writes a copy of the path file to dir, a location
// outside the application's private storage. It requires WithFilesDir.
func WithExternalFilesDir(dir string) Option {
	return func(h *Helper) error {
		if h.fs == nil {
			return errors.New("external files directory requires a files directory")
		}
		if !filepath.IsAbs(dir) {
			return aerrors.NewWith("external files directory must be an absolute path", "dir", dir)
		}
		h.extFilesDir = filepath.Clean(dir)
		return nil
	}
}

// WithLogger sets the logger used by the Helper.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Helper) error {
		if logger == nil {
			return errors.New("logger is required")
		}
		h.logger = logger.With("component", "adsp")
		return nil
	}
}

// DefaultOptions returns the default Helper options.
func DefaultOptions() []Option {
	return []Option{
		WithLogger(slog.Default()),
	}
}
