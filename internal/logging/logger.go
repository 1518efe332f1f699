// Package logging provides a structured logger with optional file output,
// configured entirely through environment variables.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// LoggerCloser wraps a logger together with the writer it may own.
type LoggerCloser struct {
	*log.Logger
	closer io.Closer
}

// Close closes the writer the logger owns, if any.
func (lc *LoggerCloser) Close() error {
	if lc.closer != nil {
		return lc.closer.Close()
	}
	return nil
}

// NewLoggerWithWriter creates a logger writing to w.
func NewLoggerWithWriter(w io.Writer) *LoggerCloser {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})

	switch os.Getenv("RVDIS_LOG_LEVEL") {
	case "debug":
		lg.SetLevel(log.DebugLevel)
	case "warn":
		lg.SetLevel(log.WarnLevel)
	case "error":
		lg.SetLevel(log.ErrorLevel)
	default:
		lg.SetLevel(log.InfoLevel)
	}

	prefix := os.Getenv("RVDIS_LOG_PREFIX")
	if prefix == "" {
		prefix = "rvdis "
	}

	// Stderr is shared with the rest of the process (error diagnostics are
	// printed there after the logger is closed), so it is never owned.
	var closer io.Closer
	if c, ok := w.(io.Closer); ok && w != io.Writer(os.Stderr) {
		closer = c
	}

	return &LoggerCloser{
		Logger: lg.WithPrefix(prefix),
		closer: closer,
	}
}

// NewLogger creates a logger based on environment variables:
// RVDIS_LOG_LEVEL: debug, info, warn, error (default: info)
// RVDIS_LOG_PREFIX: prefix for log messages (default: "rvdis ")
// RVDIS_LOG_TO_FILE: when "1", log to a timestamped file instead of stderr
func NewLogger() *LoggerCloser {
	output := io.Writer(os.Stderr)

	if os.Getenv("RVDIS_LOG_TO_FILE") == "1" {
		logFile := fmt.Sprintf("rvdis-%s-debug.log", time.Now().Format("20060102-150405"))
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err == nil {
			output = f
		}
		// Fall back to stderr when the file cannot be created.
	}

	return NewLoggerWithWriter(output)
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool {
	return os.Getenv("RVDIS_LOG_LEVEL") == "debug"
}
