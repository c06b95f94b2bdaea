package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. The level string follows zerolog names
// (debug, info, warn, ...); unknown values fall back to info.
func New(level string) zerolog.Logger {
	var out io.Writer = os.Stderr
	// Use ConsoleWriter for local development for more readable logs.
	if os.Getenv("ENV") == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	return NewWithWriter(out, level)
}

// NewWithWriter is New with an explicit sink.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	// For Google Cloud Logging, the level field name should be "severity".
	zerolog.LevelFieldName = "severity"
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
