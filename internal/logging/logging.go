// Package logging provides the single leveled logger every other package in
// this module logs through. It wraps zerolog behind a familiar call shape:
// package-level Info/Debug/Warn/Error functions taking a printf-style
// format, backed by one process-global logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		With().Timestamp().Logger()
}

// SetOutput redirects the logger to w, keeping the current level. Tests use
// this to capture or silence log output.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel parses one of "debug", "info", "warn", "error" and sets it as the
// minimum level that will be emitted. Unrecognized values default to "info".
func SetLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn":
		logger = logger.Level(zerolog.WarnLevel)
	case "error":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
}

// Debug logs a fine-grained diagnostic message.
func Debug(format string, args ...interface{}) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Info logs a routine, expected event.
func Info(format string, args ...interface{}) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a recoverable problem that does not stop the current operation.
func Warn(format string, args ...interface{}) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs a failure serious enough that the caller could not complete
// its work.
func Error(format string, args ...interface{}) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}
