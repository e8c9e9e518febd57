// Package logging builds the zerolog loggers used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel indicates an unrecognized log level name.
var ErrInvalidLevel = errors.New("invalid log level")

// Default levels.
const (
	DefaultLevel = zerolog.WarnLevel
	VerboseLevel = zerolog.DebugLevel
)

// ResolveLevel picks the log level: an explicit name wins, then --verbose,
// then DefaultLevel.
func ResolveLevel(name string, verbose bool) (zerolog.Level, error) {
	if name != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
		}
		return level, nil
	}
	if verbose {
		return VerboseLevel, nil
	}
	return DefaultLevel, nil
}

// New returns a human-readable logger writing to w at level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
