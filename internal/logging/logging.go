// Package logging builds the process logger from configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/shoplist/internal/config"
)

// SessionField is the log field carrying the per-run session id.
const SessionField = "session"

// New returns a leveled logger writing to cfg.File, or to stderr when no file
// is configured. The returned close func releases the log file, if any.
func New(cfg config.LogConfig, stderr io.Writer) (zerolog.Logger, func() error, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	out := stderr
	closeFn := func() error { return nil }
	if path := strings.TrimSpace(cfg.File); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := zerolog.New(out).Level(level).With().
		Timestamp().
		Str(SessionField, uuid.NewString()).
		Logger()
	return logger, closeFn, nil
}

// Bootstrap returns a console logger for failures that happen before the
// configured logger exists.
func Bootstrap(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.ErrorLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
