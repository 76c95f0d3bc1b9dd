// Package logcat provides a slog handler that writes to the Android system
// log.
package logcat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
)

// Priority is the Android log priority of a message.
type Priority int

// Priorities as defined in android/log.h.
const (
	PriorityVerbose Priority = 2
	PriorityDebug   Priority = 3
	PriorityInfo    Priority = 4
	PriorityWarn    Priority = 5
	PriorityError   Priority = 6
)

// String returns the single letter logcat uses for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityVerbose:
		return "V"
	case PriorityDebug:
		return "D"
	case PriorityInfo:
		return "I"
	case PriorityWarn:
		return "W"
	case PriorityError:
		return "E"
	default:
		return "?"
	}
}

// PriorityFor maps a slog level to the closest Android log priority.
func PriorityFor(lvl slog.Level) Priority {
	switch {
	case lvl < slog.LevelDebug:
		return PriorityVerbose
	case lvl < slog.LevelInfo:
		return PriorityDebug
	case lvl < slog.LevelWarn:
		return PriorityInfo
	case lvl < slog.LevelError:
		return PriorityWarn
	default:
		return PriorityError
	}
}

// WriteFunc writes a single formatted message to the log.
type WriteFunc func(prio Priority, tag, msg string) error

// BriefWriter returns a WriteFunc that writes messages to w in the logcat
// brief format, e.g. "I/NativeHelper: message".
func BriefWriter(w io.Writer) WriteFunc {
	return func(prio Priority, tag, msg string) error {
		_, err := fmt.Fprintf(w, "%s/%s: %s\n", prio, tag, msg)
		//nolint:wrapcheck // This is fine.
		return err
	}
}

// Options configures the Handler.
type Options struct {
	// Level is the minimum level of records to write. Defaults to slog.LevelInfo.
	Level slog.Leveler
	// Write overrides the function that writes messages. Defaults to
	// PlatformWriter(os.Stderr).
	Write WriteFunc
}

// Handler is a slog.Handler that writes records to the Android log under a
// fixed tag. The time and level are omitted from the message, since logcat
// records them itself.
type Handler struct {
	tag   string
	write WriteFunc
	mx    *sync.Mutex
	buf   *bytes.Buffer
	inner slog.Handler
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler returns a new Handler that writes under tag.
func NewHandler(tag string, opts *Options) *Handler {
	if opts == nil {
		opts = &Options{}
	}
	write := opts.Write
	if write == nil {
		write = PlatformWriter(os.Stderr)
	}

	buf := &bytes.Buffer{}
	inner := tint.NewHandler(buf, &tint.Options{
		Level:   opts.Level,
		NoColor: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})

	return &Handler{tag: tag, write: write, mx: &sync.Mutex{}, buf: buf, inner: inner}
}

// Enabled implements the slog.Handler interface.
func (h *Handler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.inner.Enabled(ctx, lvl)
}

// Handle implements the slog.Handler interface.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mx.Lock()
	defer h.mx.Unlock()

	h.buf.Reset()
	if err := h.inner.Handle(ctx, r); err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	return h.write(PriorityFor(r.Level), h.tag, strings.TrimRight(h.buf.String(), "\n"))
}

// WithAttrs implements the slog.Handler interface.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.inner = h.inner.WithAttrs(attrs)
	return &h2
}

// WithGroup implements the slog.Handler interface.
func (h *Handler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.inner = h.inner.WithGroup(name)
	return &h2
}
