package mui

import (
	"log/slog"
	"os"
)

// logLevel controls the log level for all package loggers.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// defaultLogger is used by contexts created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging (evictions, focus changes,
// popup dismissal). Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose reports whether debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
