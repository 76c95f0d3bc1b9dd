package bridge

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	actx "go.hackfix.me/envbridge/app/context"
	aerrors "go.hackfix.me/envbridge/app/errors"
)

const (
	// KnownPathVariable is the variable the Hexagon DSP runtime uses to locate
	// its skeleton libraries.
	KnownPathVariable = "ADSP_LIBRARY_PATH"
	// LibraryPathVariable is the dynamic linker search path.
	LibraryPathVariable = "LD_LIBRARY_PATH"
)

var diagnosticVariables = []string{KnownPathVariable, LibraryPathVariable}

// Bridge exposes the process environment to managed code. All operations are
// serialized, since the underlying environment table isn't guaranteed to be
// safe for concurrent use.
type Bridge struct {
	mx     sync.Mutex
	env    actx.Environment
	logger *slog.Logger
}

// New returns a new Bridge over the given environment.
func New(env actx.Environment, opts ...Option) (*Bridge, error) {
	if env == nil {
		return nil, errors.New("environment implementation is required")
	}

	b := &Bridge{env: env}

	opts = append(DefaultOptions(), opts...)
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// SetVariable sets the variable name to value, replacing any existing value.
// It returns false if either argument is absent, or if the environment
// rejected the write.
func (b *Bridge) SetVariable(name, value sql.Null[string]) bool {
	b.mx.Lock()
	defer b.mx.Unlock()

	if !name.Valid || !value.Valid {
		b.logger.Error(ErrInvalidInput.Error())
		return false
	}

	return b.set(name.V, value.V) == nil
}

// GetVariable returns the value of the variable name, or an absent value if
// name is absent or the variable doesn't exist.
func (b *Bridge) GetVariable(name sql.Null[string]) sql.Null[string] {
	b.mx.Lock()
	defer b.mx.Unlock()

	if !name.Valid {
		b.logger.Error("name is null")
		return sql.Null[string]{}
	}

	val, err := b.get(name.V)
	if err != nil {
		return sql.Null[string]{}
	}

	return sql.Null[string]{V: val, Valid: true}
}

// VerifyKnownPathVariable reports whether ADSP_LIBRARY_PATH is set.
func (b *Bridge) VerifyKnownPathVariable() bool {
	b.mx.Lock()
	defer b.mx.Unlock()

	path, ok := b.env.Lookup(KnownPathVariable)
	if !ok {
		b.logger.Error(fmt.Sprintf("%s is not set", KnownPathVariable))
		return false
	}

	b.logger.Info(fmt.Sprintf("%s is set", KnownPathVariable), "path", path)

	return true
}

// PrintDiagnostics logs the values of ADSP_LIBRARY_PATH and LD_LIBRARY_PATH,
// between a header and a footer line.
func (b *Bridge) PrintDiagnostics() {
	b.mx.Lock()
	defer b.mx.Unlock()

	b.logger.Info("----- Native Environment Variables -----")
	for _, e := range b.diagnose().Entries {
		b.logger.Info(fmt.Sprintf("%s = %s", e.Name, e))
	}
	b.logger.Info("----- End of Diagnostics -----")
}

// Diagnose returns the values of the variables PrintDiagnostics logs,
// without logging them.
func (b *Bridge) Diagnose() Report {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.diagnose()
}

// Set sets the variable name to value, replacing any existing value.
func (b *Bridge) Set(name, value string) error {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.set(name, value)
}

// Get returns the value of the variable name. It returns ErrNotFound if the
// variable doesn't exist.
func (b *Bridge) Get(name string) (string, error) {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.get(name)
}

func (b *Bridge) set(name, value string) error {
	var result int
	err := b.env.Set(name, value)
	if err != nil {
		result = -1
	}

	b.logger.Info("setting environment variable", "name", name, "value", value, "result", result)

	if err != nil {
		return aerrors.WithCause(ErrPrimitive, err, "name", name)
	}

	return nil
}

func (b *Bridge) get(name string) (string, error) {
	val, ok := b.env.Lookup(name)
	if !ok {
		b.logger.Info("environment variable not found", "name", name)
		return "", aerrors.With(ErrNotFound, "name", name)
	}

	b.logger.Info("got environment variable", "name", name, "value", val)

	return val, nil
}

func (b *Bridge) diagnose() Report {
	r := Report{Entries: make([]ReportEntry, 0, len(diagnosticVariables))}
	for _, name := range diagnosticVariables {
		val, ok := b.env.Lookup(name)
		r.Entries = append(r.Entries, ReportEntry{
			Name:  name,
			Value: sql.Null[string]{V: val, Valid: ok},
		})
	}

	return r
}
