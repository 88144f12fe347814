package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger: human-readable console output in
// development, JSON otherwise.
func New(environment, level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	if environment == "development" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr}
		return zerolog.New(writer).Level(logLevel).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
}
