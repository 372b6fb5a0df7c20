package app

import (
	"io"
	"log/slog"
)

// Log settings used when neither flags nor callers choose one. Query results
// go to stdout, so at the default level stderr only carries problems: a
// missing grade basis, a failed load.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// logLevels maps the accepted -log-level values to slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// newLogger builds the logger for one App. It does not touch the global
// logger. An unknown or empty level falls back to DefaultLogLevel, any
// format other than "json" to text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = logLevels[DefaultLogLevel]
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}

// IsLogLevel reports whether s is an accepted -log-level value.
func IsLogLevel(s string) bool {
	_, ok := logLevels[s]
	return ok
}
