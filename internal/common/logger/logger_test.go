package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewZapAdapter(zap.New(core)), logs
}

func TestNewStructured_LogsAtConfiguredLevel(t *testing.T) {
	log := NewStructured("debug", "json")
	require.NotNil(t, log)

	// Must not panic with or without fields.
	log.Debug("debug message", nil)
	log.Info("info message", map[string]interface{}{"key": "value"})
	log.Warn("warn message", nil)
	log.Error("error message", nil)
}

func TestZapAdapter_MapsFields(t *testing.T) {
	log, logs := newObservedLogger()

	log.Info("job finished", map[string]interface{}{"jobKey": int64(42)})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "job finished", entry.Message)
	assert.Equal(t, int64(42), entry.ContextMap()["jobKey"])
}

func TestZapAdapter_WithFieldsScopesAllEntries(t *testing.T) {
	log, logs := newObservedLogger()
	scoped := log.WithFields(map[string]interface{}{"taskType": "generate-metadata"})

	scoped.Info("first", nil)
	scoped.Warn("second", nil)

	require.Equal(t, 2, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, "generate-metadata", entry.ContextMap()["taskType"])
	}
}

func TestZapAdapter_WithErrorAttachesError(t *testing.T) {
	log, logs := newObservedLogger()

	log.WithError(errors.New("broker unavailable")).Error("job failed", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "broker unavailable", logs.All()[0].ContextMap()["error"])
}

func TestNewNoOpLogger_DiscardsEverything(t *testing.T) {
	log := NewNoOpLogger()

	log.Info("dropped", map[string]interface{}{"key": "value"})
	log.WithError(errors.New("x")).Error("also dropped", nil)
}
