package logger

import (
	"io"
	"os"
	"sync/atomic"

	charm "github.com/charmbracelet/log"
)

// Level is the underlying log level type.
type Level = charm.Level

// defaultLogger is the global default DataHubLogger instance stored atomically.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(NewDataHubLogger(charm.Default()))
}

// Default returns the global default DataHubLogger instance.
func Default() *DataHubLogger {
	return defaultLogger.Load().(*DataHubLogger)
}

// SetDefault sets a new global default DataHubLogger instance.
func SetDefault(logger *DataHubLogger) {
	if logger != nil {
		defaultLogger.Store(logger)
	}
}

// New creates a new DataHubLogger writing to stderr.
func New() *DataHubLogger {
	return NewDataHubLogger(charm.New(os.Stderr))
}

// SetLevel sets the level on the default logger.
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the default logger's current level.
func GetLevel() Level {
	return Default().GetLevel()
}

// SetOutput redirects the default logger's output.
func SetOutput(w io.Writer) {
	Default().SetOutput(w)
}

// Trace logs at trace level using the default logger.
func Trace(msg interface{}, keyvals ...interface{}) {
	Default().Trace(msg, keyvals...)
}

// Debug logs at debug level using the default logger.
func Debug(msg interface{}, keyvals ...interface{}) {
	Default().Debug(msg, keyvals...)
}

// Info logs at info level using the default logger.
func Info(msg interface{}, keyvals ...interface{}) {
	Default().Info(msg, keyvals...)
}

// Warn logs at warn level using the default logger.
func Warn(msg interface{}, keyvals ...interface{}) {
	Default().Warn(msg, keyvals...)
}

// Error logs at error level using the default logger.
func Error(msg interface{}, keyvals ...interface{}) {
	Default().Error(msg, keyvals...)
}
