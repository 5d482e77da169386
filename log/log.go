// Package log provides a lightweight, thread-safe structured logging
// facility for the Horcrux engine using slog with JSON output.
//
// The engine itself almost never logs — split and bind communicate
// failure entirely through returned errors (see package errors). The
// one legitimate call site is auto-discovery's per-file warning when a
// candidate shard cannot be read or fails to parse; everything else
// should go through
// error returns, not log lines.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var logger *slog.Logger
var loggerMu sync.Mutex

// Log returns the process-wide singleton logger, configured for JSON
// output on stderr at the level from HORCRUX_LOG_LEVEL. The logger is
// created on first use and reused afterward.
func Log() *slog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger != nil {
		return logger
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: Level(),
	})
	logger = slog.New(handler)
	return logger
}

// Level returns the configured logging level, read from the
// HORCRUX_LOG_LEVEL environment variable. Valid values (case
// insensitive) are DEBUG, INFO, WARN, and ERROR. Defaults to WARN if
// unset or unrecognized.
func Level() slog.Level {
	switch strings.ToUpper(os.Getenv("HORCRUX_LOG_LEVEL")) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
