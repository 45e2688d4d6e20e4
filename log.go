package vtable

import (
	"io"
	"log/slog"
	"os"
)

// logLevel controls the log level for engine debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the engine.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects engine logging. Terminal hosts use this to keep
// log lines off the alternate screen.
func SetLogOutput(w io.Writer) {
	tableLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// tableLogger is the logger for engine, detector and gesture debugging.
var tableLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
