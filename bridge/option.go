package bridge

import (
	"errors"
	"log/slog"
)

// Option is a function that allows configuring the Bridge.
type Option func(*Bridge) error

// WithLogger sets the logger used by the Bridge.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bridge) error {
		if logger == nil {
			return errors.New("logger is required")
		}
		b.logger = logger.With("component", "bridge")
		return nil
	}
}

// DefaultOptions returns the default Bridge options.
func DefaultOptions() []Option {
	return []Option{
		WithLogger(slog.Default()),
	}
}
