package config

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog logger. LOG_LEVEL selects the
// level (default info); LOG_PRETTY=true switches to console output.
func NewLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(getenv("LOG_LEVEL", "info")))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if getenv("LOG_PRETTY", "") == "true" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Logger()
}
