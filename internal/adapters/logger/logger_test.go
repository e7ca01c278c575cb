package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/core/port"
)

func TestSlogAdapterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"use_case": "FindListings"}).Error("Storage returned an error", errors.New("boom"), port.Fields{"page": 2})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Storage returned an error", record["msg"])
	assert.Equal(t, "FindListings", record["use_case"])
	assert.Equal(t, float64(2), record["page"])
	assert.Equal(t, "boom", record["err"])
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Debug("hidden", nil)
	logger.Warn("shown", nil)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "shown"))
}

type fakeFluent struct {
	tags     []string
	messages []map[string]interface{}
	closed   bool
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.tags = append(f.tags, tag)
	f.messages = append(f.messages, map[string]interface{}(message.(port.Fields)))
	return nil
}

func (f *fakeFluent) Close() error {
	f.closed = true
	return nil
}

func TestFluentLoggerAdapter(t *testing.T) {
	client := &fakeFluent{}
	logger := newFluentLoggerAdapter(client, "catalog-service", slog.LevelInfo)

	logger.Debug("dropped", nil)
	child := logger.WithFields(port.Fields{"component": "rest"})
	child.Error("Request failed", errors.New("timeout"), port.Fields{"status": 500})
	logger.Info("plain", nil)

	require.Equal(t, []string{"catalog-service.error", "catalog-service.info"}, client.tags)
	assert.Equal(t, "rest", client.messages[0]["component"])
	assert.Equal(t, "timeout", client.messages[0]["error"])
	assert.Equal(t, "Request failed", client.messages[0]["message"])
	assert.NotContains(t, client.messages[1], "component", "parent logger keeps its own fields")

	require.NoError(t, logger.Close())
	assert.True(t, client.closed)
}

func TestNewFluentLoggerAdapterRejectsNil(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, "catalog-service", nil)
	assert.Error(t, err)
}

func TestMultiLoggerAdapter(t *testing.T) {
	var first, second bytes.Buffer
	multi, err := NewMultiLoggerAdapter(
		NewSlogAdapter(SlogConfig{Writer: &first}),
		nil,
		NewSlogAdapter(SlogConfig{Writer: &second}),
	)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"trace_id": "abc"}).Info("Request started", nil)
	assert.Contains(t, first.String(), "trace_id=abc")
	assert.Contains(t, second.String(), "Request started")

	_, err = NewMultiLoggerAdapter()
	assert.Error(t, err)
}
