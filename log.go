package gfx

import (
	"log/slog"
	"os"
)

// logLevel controls the package log level. Default is LevelInfo, which
// suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// logger is shared by every component in the package.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after loading the config.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// Logger returns the package logger so programs and backends log through
// the same handler and level.
func Logger() *slog.Logger {
	return logger
}
