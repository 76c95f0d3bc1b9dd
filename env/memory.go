package env

import (
	"maps"
	"sync"

	actx "go.hackfix.me/envbridge/app/context"
)

// Memory is an in-memory environment, safe for concurrent use. The zero
// value is an empty environment ready to use.
type Memory struct {
	mx  sync.RWMutex
	env map[string]string
}

var _ actx.Environment = (*Memory)(nil)

// NewMemory returns a Memory environment populated with a copy of vars.
func NewMemory(vars map[string]string) *Memory {
	m := &Memory{env: make(map[string]string, len(vars))}
	maps.Copy(m.env, vars)
	return m
}

// Lookup implements the actx.Environment interface.
func (m *Memory) Lookup(key string) (string, bool) {
	m.mx.RLock()
	defer m.mx.RUnlock()
	val, ok := m.env[key]
	return val, ok
}

// Set implements the actx.Environment interface.
func (m *Memory) Set(key, value string) error {
	if err := validate(key, value); err != nil {
		return err
	}

	m.mx.Lock()
	defer m.mx.Unlock()
	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value

	return nil
}

// Len returns the number of variables.
func (m *Memory) Len() int {
	m.mx.RLock()
	defer m.mx.RUnlock()
	return len(m.env)
}
