package logger

import (
	"bytes"
	"strings"
	"testing"

	charm "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestTraceLevel_RelativeToDebug(t *testing.T) {
	// Trace is exactly one level more verbose than debug.
	assert.Equal(t, charm.DebugLevel-1, TraceLevel)
	assert.Less(t, int(TraceLevel), int(charm.DebugLevel))
}

func TestDataHubLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)
	logger.SetLevel(TraceLevel)

	logger.Trace("test trace message", "key", "value")
	output := buf.String()

	assert.Contains(t, output, "test trace message")
	assert.Contains(t, output, "key")
}

func TestDataHubLogger_TraceSuppressedAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)
	logger.SetLevel(charm.DebugLevel)

	logger.Trace("hidden trace message")

	assert.NotContains(t, buf.String(), "hidden trace message")
}

func TestDataHubLogger_Tracef(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)
	logger.SetLevel(TraceLevel)

	logger.Tracef("checking %s=%d", "count", 3)

	assert.Contains(t, buf.String(), "checking count=3")
}

func TestDataHubLogger_GetLevelString(t *testing.T) {
	logger := New()

	logger.SetLevel(TraceLevel)
	assert.Equal(t, "trace", logger.GetLevelString())

	logger.SetLevel(charm.DebugLevel)
	assert.Equal(t, "debug", strings.ToLower(logger.GetLevelString()))

	logger.SetLevel(charm.InfoLevel)
	assert.Equal(t, "info", strings.ToLower(logger.GetLevelString()))
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected charm.Level
	}{
		{LogLevelTrace, TraceLevel},
		{LogLevelDebug, charm.DebugLevel},
		{LogLevelInfo, charm.InfoLevel},
		{LogLevelWarning, charm.WarnLevel},
		{LogLevelOff, OffLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			logger := New()
			logger.SetLogLevel(tt.level)
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestOffLevelSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	logger := New()
	logger.SetOutput(&buf)
	logger.SetLogLevel(LogLevelOff)

	logger.Error("should not appear")

	assert.Empty(t, buf.String())
}

func TestPackageLevelFunctions(t *testing.T) {
	oldLogger := Default()
	defer SetDefault(oldLogger)

	var buf bytes.Buffer
	testLogger := New()
	testLogger.SetOutput(&buf)
	testLogger.SetLevel(TraceLevel)
	SetDefault(testLogger)

	Trace("package level trace")
	Debug("package level debug")
	Info("package level info")
	Warn("package level warn")
	Error("package level error")

	output := buf.String()
	assert.Contains(t, output, "package level trace")
	assert.Contains(t, output, "package level debug")
	assert.Contains(t, output, "package level info")
	assert.Contains(t, output, "package level warn")
	assert.Contains(t, output, "package level error")
}

func TestSetDefaultIgnoresNil(t *testing.T) {
	oldLogger := Default()
	defer SetDefault(oldLogger)

	SetDefault(nil)
	assert.Equal(t, oldLogger, Default())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		hasError bool
	}{
		{"Trace", LogLevelTrace, false},
		{"Debug", LogLevelDebug, false},
		{"Info", LogLevelInfo, false},
		{"Warning", LogLevelWarning, false},
		{"Off", LogLevelOff, false},
		{"", LogLevelInfo, false}, // Default to Info
		{"Invalid", "", true},
		{"info", "", true}, // level names are case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidLogLevel)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, level)
			}
		})
	}
}
