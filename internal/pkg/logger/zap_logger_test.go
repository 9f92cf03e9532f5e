package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{logger: zap.New(core)}, logs
}

func TestSessionIDIsPromoted(t *testing.T) {
	l, logs := observed()

	l.Info("ChatbotService", "Stage transition", map[string]interface{}{
		"session_id": "94770000000",
		"to":         "MENU",
	})

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "ChatbotService", ctx["module"])
	assert.Equal(t, "94770000000", ctx["session_id"])
	assert.Equal(t, map[string]interface{}{"to": "MENU"}, ctx["details"])
}

func TestNilDetails(t *testing.T) {
	l, logs := observed()

	l.Warn("Bootstrap", "Generation disabled", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, map[string]interface{}{}, logs.All()[0].ContextMap()["details"])
}

func TestErrorKeepsReference(t *testing.T) {
	l, logs := observed()

	l.Error("TranscriptConsumer", "Failed to persist turn", map[string]interface{}{"error": "connection refused"})

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "connection refused", ctx["error_ref"])
}
