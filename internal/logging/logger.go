// Package logging builds the structured zerolog logger shared by all
// commands.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates a structured logger writing to w with contextual
// fields for the deployment. Non-empty fields are added automatically.
func NewLogger(w io.Writer, level, environment, location string) zerolog.Logger {
	ctx := zerolog.New(w).With().Timestamp().Str("service", "hubspoke")

	if environment != "" {
		ctx = ctx.Str("environment", environment)
	}
	if location != "" {
		ctx = ctx.Str("location", location)
	}

	logger := ctx.Logger()

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return logger.Level(parsed)
}

// NewConsoleLogger creates a human-readable logger for interactive use.
func NewConsoleLogger(level string) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr}
	logger := zerolog.New(w).With().Timestamp().Logger()

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return logger.Level(parsed)
}
