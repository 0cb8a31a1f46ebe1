package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Defaults(t *testing.T) {
	l, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestNewLogger_InvalidOutputPath(t *testing.T) {
	_, err := NewLogger(LogConfig{OutputPaths: []string{"/nonexistent-dir-xyz/file.log"}})
	assert.Error(t, err)
}

func TestObservedFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel) // capture everything from debug up
	l := NewLoggerFromCore(core)

	l.Debug("dbg", String("k", "v"))
	l.Info("inf", Int("n", 3), Float64("score", 87.5))
	l.Warn("wrn", Bool("fallback", true))
	l.Error("err", Err(errors.New("boom")), Duration("took", time.Second))

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "dbg", entries[0].Message)
	assert.Equal(t, "v", entries[0].ContextMap()["k"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["n"])
	assert.Equal(t, 87.5, entries[1].ContextMap()["score"])
	assert.Equal(t, true, entries[2].ContextMap()["fallback"])
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestWithAndNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	child := l.With(String("component", "matcher")).Named("engine")
	child.Info("scored")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "matcher", entries[0].ContextMap()["component"])
	assert.Equal(t, "engine", entries[0].LoggerName)

	// Parent is unaffected.
	l.Info("plain")
	assert.NotContains(t, logs.All()[1].ContextMap(), "component")
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	assert.NotNil(t, Default())

	nop := NewNopLogger()
	SetDefault(nop)
	assert.Equal(t, nop, Default())

	// nil must be ignored.
	SetDefault(nil)
	assert.Equal(t, nop, Default())
}
