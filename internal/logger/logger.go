// Package logger configures the structured logger shared by the CLI
// commands. The export engine itself never logs.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a new structured logger writing human-readable output to
// stderr. Verbosity defaults to info; BKX_LOG_LEVEL overrides it.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().Timestamp().Logger()
	if level, err := zerolog.ParseLevel(os.Getenv("BKX_LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		logger = logger.Level(level)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}

// NewWithWriter creates a new structured logger with a custom writer.
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
