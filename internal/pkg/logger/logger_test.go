package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		want     zapcore.Level
		encoding string
	}{
		{"info", "info", zapcore.InfoLevel, "json"},
		{"warn", "warn", zapcore.WarnLevel, "json"},
		{"unknown falls back to info", "loud", zapcore.InfoLevel, "json"},
		{"debug uses console", "debug", zapcore.DebugLevel, "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := build(tt.level)
			assert.Equal(t, tt.want, cfg.Level.Level())
			assert.Equal(t, tt.encoding, cfg.Encoding)
		})
	}
}

func TestNew(t *testing.T) {
	log, err := New("error")
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
