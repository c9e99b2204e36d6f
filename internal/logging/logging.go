// Package logging sets up zerolog for the CLI and adapts it to the
// spotify SDK's Logger interface.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a logger writing to w at the given level.
// Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	// Use pretty console output if logging to stderr
	if w == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger
}

// Adapter implements spotify.Logger on top of a zerolog.Logger.
type Adapter struct {
	Logger zerolog.Logger
}

// Debugf logs a debug message with format and arguments.
func (a Adapter) Debugf(format string, args ...interface{}) {
	a.Logger.Debug().Str("component", "spotify").Msg(fmt.Sprintf(format, args...))
}
