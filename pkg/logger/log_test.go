package logger

import (
	"testing"

	"hr-records/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Level(t *testing.T) {
	log, err := NewLogger(config.LogConfig{Level: "warn", Encoding: "json", Output: []string{"stdout"}})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_FallsBackToDebug(t *testing.T) {
	log, err := NewLogger(config.LogConfig{Level: "loud"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
