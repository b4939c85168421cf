// Package logging configures the process-wide slog default.
package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Setup installs a JSON handler at the given level. Unknown levels fall back
// to info.
func Setup(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))
}

// Fatalf logs at error level and exits. Startup failures only; never call it
// once the server is serving.
func Fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
