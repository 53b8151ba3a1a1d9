package snaplist

import (
	"log/slog"
	"os"
)

// listLogLevel controls the log level for list debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var listLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for lists.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		listLogLevel.Set(slog.LevelDebug)
	} else {
		listLogLevel.Set(slog.LevelInfo)
	}
}

// listVerbose returns true if debug logging is enabled.
func listVerbose() bool {
	return listLogLevel.Level() <= slog.LevelDebug
}

// listLogger covers controller lifecycle: rebuilds, pool growth, template swaps.
var listLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: listLogLevel}))

// physicsLogger covers auto-scroll animations.
var physicsLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: listLogLevel}))
