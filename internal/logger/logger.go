package logger

import (
	"log/slog"
	"os"
)

var (
	// default logger instance
	defaultLogger *slog.Logger
)

// text output until Configure is called
func init() {
	Configure(os.Getenv("ENVIRONMENT"))
}

// swaps the default logger for the given environment.
// production gets JSON on stdout at INFO, everything else human-readable text on stderr at DEBUG
func Configure(environment string) {
	var handler slog.Handler

	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	defaultLogger = slog.New(handler).With("service", "codive")
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs an error message with the error attached
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs and exits, startup failures only
func FatalErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
