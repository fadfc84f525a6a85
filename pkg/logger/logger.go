// Package logger wraps charmbracelet/log with a trace level below debug and
// a process-wide default instance.
package logger

import (
	"fmt"

	charm "github.com/charmbracelet/log"
)

// TraceLevel is one step more verbose than charm's debug level.
const TraceLevel = charm.DebugLevel - 1

// OffLevel sits above every charm level and silences all output.
const OffLevel = charm.FatalLevel + 1

// Charm levels re-exported so callers need not import charmbracelet/log.
const (
	DebugLevel = charm.DebugLevel
	InfoLevel  = charm.InfoLevel
	WarnLevel  = charm.WarnLevel
	ErrorLevel = charm.ErrorLevel
)

// DataHubLogger is a charm logger with trace support.
type DataHubLogger struct {
	*charm.Logger
}

// NewDataHubLogger wraps an existing charm logger.
func NewDataHubLogger(l *charm.Logger) *DataHubLogger {
	return &DataHubLogger{Logger: l}
}

// Trace logs a message at TraceLevel with optional key-value pairs.
func (l *DataHubLogger) Trace(msg interface{}, keyvals ...interface{}) {
	l.Logger.Log(TraceLevel, msg, keyvals...)
}

// Tracef logs a formatted message at TraceLevel.
func (l *DataHubLogger) Tracef(format string, args ...interface{}) {
	l.Logger.Log(TraceLevel, fmt.Sprintf(format, args...))
}

// GetLevelString returns the current level name, including the custom
// trace level charm does not know about.
func (l *DataHubLogger) GetLevelString() string {
	level := l.GetLevel()
	if level == TraceLevel {
		return "trace"
	}
	return level.String()
}

// SetLogLevel applies a parsed LogLevel.
func (l *DataHubLogger) SetLogLevel(level LogLevel) {
	l.SetLevel(level.charmLevel())
}
