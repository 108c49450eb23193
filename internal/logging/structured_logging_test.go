package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("hello", slog.String("k", "v"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "v", entry["k"])
}

func TestLogErrorIncludesErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "something broke", errors.New("boom"), slog.String("component", "loader"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "something broke", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "loader", entry["component"])
}

func TestLogErrorNilLoggerDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "msg", errors.New("boom"))
	})
}

func TestLogHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/api/churn/summary.json", 200, 1.5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "http_request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, float64(200), entry["status"])
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo)
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
