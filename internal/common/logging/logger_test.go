package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level LogLevel) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger, err := NewZapLogger(LogConfig{
		Level:  level,
		Output: buf,
	})
	require.NoError(t, err)
	return logger, buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"nonsense", InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "ParseLevel(%q)", tt.input)
	}
}

func TestZapAdapter_Levels(t *testing.T) {
	logger, buf := newBufferLogger(t, InfoLevel)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", assert.AnError)

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, assert.AnError.Error())
}

func TestZapAdapter_WithFields(t *testing.T) {
	logger, buf := newBufferLogger(t, InfoLevel)

	logger.WithFields(String("component", "cache")).Info("cache populated", Int("count", 3))

	out := buf.String()
	assert.Contains(t, out, "cache populated")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "cache")
	assert.Contains(t, out, "count")
}

func TestZapAdapter_TimestampsAreRFC3339(t *testing.T) {
	logger, buf := newBufferLogger(t, InfoLevel)

	logger.Info("timestamped message")

	// The first token of a console-encoded line is the timestamp
	fields := strings.Fields(buf.String())
	require.NotEmpty(t, fields)
	_, err := time.Parse(time.RFC3339, fields[0])
	assert.NoError(t, err, "timestamp %q", fields[0])
}

func TestGlobalLogger(t *testing.T) {
	logger, buf := newBufferLogger(t, InfoLevel)
	SetGlobalLogger(logger)

	Info("via global logger")

	if !strings.Contains(buf.String(), "via global logger") {
		t.Errorf("expected global logger output, got %q", buf.String())
	}
}
