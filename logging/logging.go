package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the application-wide structured logger. Handlers and services log
// through it instead of writing to stderr directly.
var Log zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Setup configures the global logger for the given environment. Development
// gets human-readable console output, production gets JSON at info level.
func Setup(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		Log = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	Log = zerolog.New(out).With().Timestamp().Logger()
}
