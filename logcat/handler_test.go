package logcat

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	prio Priority
	tag  string
	msg  string
}

type capture struct {
	mx      sync.Mutex
	entries []logEntry
	err     error
}

func (c *capture) write(prio Priority, tag, msg string) error {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.entries = append(c.entries, logEntry{prio: prio, tag: tag, msg: msg})
	return c.err
}

func TestPriorityFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level   slog.Level
		expPrio Priority
		expStr  string
	}{
		{level: slog.LevelDebug - 4, expPrio: PriorityVerbose, expStr: "V"},
		{level: slog.LevelDebug, expPrio: PriorityDebug, expStr: "D"},
		{level: slog.LevelInfo, expPrio: PriorityInfo, expStr: "I"},
		{level: slog.LevelInfo + 2, expPrio: PriorityInfo, expStr: "I"},
		{level: slog.LevelWarn, expPrio: PriorityWarn, expStr: "W"},
		{level: slog.LevelError, expPrio: PriorityError, expStr: "E"},
		{level: slog.LevelError + 4, expPrio: PriorityError, expStr: "E"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			prio := PriorityFor(tt.level)
			assert.Equal(t, tt.expPrio, prio)
			assert.Equal(t, tt.expStr, prio.String())
		})
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	c := &capture{}
	logger := slog.New(NewHandler("NativeHelper", &Options{Write: c.write}))

	logger.Debug("hidden")
	logger.Info("got environment variable", "name", "FOO", "value", "bar")
	logger.With("component", "bridge").Error("ADSP_LIBRARY_PATH is not set")
	logger.WithGroup("env").Warn("odd", "name", "X")

	require.Len(t, c.entries, 3)

	assert.Equal(t, logEntry{
		prio: PriorityInfo, tag: "NativeHelper",
		msg: "got environment variable name=FOO value=bar",
	}, c.entries[0])
	assert.Equal(t, logEntry{
		prio: PriorityError, tag: "NativeHelper",
		msg: "ADSP_LIBRARY_PATH is not set component=bridge",
	}, c.entries[1])
	assert.Equal(t, PriorityWarn, c.entries[2].prio)
	assert.Equal(t, "odd env.name=X", c.entries[2].msg)
}

func TestHandlerLevel(t *testing.T) {
	t.Parallel()

	c := &capture{}
	lvl := &slog.LevelVar{}
	lvl.Set(slog.LevelDebug)
	logger := slog.New(NewHandler("T", &Options{Level: lvl, Write: c.write}))

	logger.Debug("shown")
	lvl.Set(slog.LevelError)
	logger.Info("hidden")

	require.Len(t, c.entries, 1)
	assert.Equal(t, PriorityDebug, c.entries[0].prio)
	assert.Equal(t, "shown", c.entries[0].msg)
}

func TestHandlerWriteError(t *testing.T) {
	t.Parallel()

	c := &capture{err: errors.New("boom")}
	h := NewHandler("T", &Options{Write: c.write})

	logger := slog.New(h)
	logger.Info("message")
	require.Len(t, c.entries, 1)
}

func TestBriefWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	logger := slog.New(NewHandler("NativeHelper", &Options{Write: BriefWriter(&sb)}))
	logger.Info("----- End of Diagnostics -----")
	logger.Error("ADSP_LIBRARY_PATH is not set")

	assert.Equal(t,
		"I/NativeHelper: ----- End of Diagnostics -----\n"+
			"E/NativeHelper: ADSP_LIBRARY_PATH is not set\n",
		sb.String())
}
