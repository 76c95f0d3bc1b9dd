package app

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/require"

	"go.hackfix.me/envbridge/env"
)

type testApp struct {
	*App
	stdout, stderr *safeBuffer
	env            *env.Memory
	fs             vfs.FileSystem
}

func newTestApp(t *testing.T, vars map[string]string, opts ...Option) *testApp {
	t.Helper()

	var (
		stdout, stderr = newSafeBuffer(), newSafeBuffer()
		menv           = env.NewMemory(vars)
		fs             = memoryfs.New()
	)

	opts = append([]Option{
		WithContext(t.Context()),
		WithEnv(menv),
		WithFDs(strings.NewReader(""), stdout, stderr),
		WithFS(fs),
		WithLogger(false, false),
	}, opts...)
	app, err := New("envbridge", "/config.json", opts...)
	require.NoError(t, err)

	return &testApp{App: app, stdout: stdout, stderr: stderr, env: menv, fs: fs}
}

func (ta *testApp) Run(args ...string) error {
	ta.stdout.Reset()
	ta.stderr.Reset()
	return ta.App.Run(args)
}

// safeBuffer is a thread-safe buffer.
type safeBuffer struct {
	mx  sync.RWMutex
	buf *bytes.Buffer
}

func newSafeBuffer() *safeBuffer {
	return &safeBuffer{buf: &bytes.Buffer{}}
}

func (b *safeBuffer) Write(p []byte) (n int, err error) {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) Reset() {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.buf.Reset()
}

func (b *safeBuffer) String() string {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.buf.String()
}

func (b *safeBuffer) Lines() []string {
	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
