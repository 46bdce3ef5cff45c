package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observe swaps the process logger for an in-memory one for the duration of the test
func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log
	log = zap.New(core)
	t.Cleanup(func() { log = prev })
	return logs
}

func TestLoggingBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("message before initialize", zap.String("k", "v"))
		Error(errors.New("boom"))
		Error(nil)
		DebugCtx(context.Background(), "debug message")
	})
}

func TestInitialize(t *testing.T) {
	prev := log
	t.Cleanup(func() { log = prev })

	err := Initialize(Config{
		Debug: true,
		Tags: map[string]string{
			"service": "logger-test",
		},
	})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zap.DebugLevel))
	assert.NotNil(t, fromContext(nil)) //nolint:staticcheck

	assert.NotPanics(t, func() {
		WarnCtx(context.Background(), "warning", zap.Int("attempt", 1))
		Flush(0)
	})
}

func TestInitializeInvalidSentryDSN(t *testing.T) {
	err := Initialize(Config{
		SentryDSN: "not a dsn",
	})
	assert.Error(t, err)
}

func TestWithFields(t *testing.T) {
	logs := observe(t)

	ctx := WithFields(context.Background(), zap.String("request_id", "req-1"))
	child := WithFields(ctx, zap.String("path", "/health"))

	InfoCtx(child, "handled", zap.Int("status", 200))
	ErrorCtx(ctx, errors.New("boom"))
	ErrorCtx(context.Background(), nil)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	fields := entries[0].ContextMap()
	assert.Equal(t, "handled", entries[0].Message)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/health", fields["path"])
	assert.Equal(t, int64(200), fields["status"])

	assert.Equal(t, "boom", entries[1].Message)
	assert.Equal(t, "req-1", entries[1].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "path")

	assert.Equal(t, "error occurred", entries[2].Message)
	assert.NotContains(t, entries[2].ContextMap(), "request_id")
}
