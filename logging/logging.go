package logging

import (
	"io"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w at level. Console output is human
// readable; anything else gets JSON lines. Levels below zerolog's global
// level are still filtered; see EnableAllLevels.
func New(w io.Writer, level zerolog.Level, console bool) zerolog.Logger {
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// EnableAllLevels lowers zerolog's process-wide level to Trace so that
// each logger's own level decides. Call it once at startup.
func EnableAllLevels() {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
}

// Open returns a JSON logger appending to the file at path and a function
// closing it. An empty path logs to stderr in console format.
func Open(path string, level zerolog.Level) (zerolog.Logger, func() error, error) {
	if path == "" {
		return New(os.Stderr, level, true), func() error { return nil }, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrapf(err, "log file %q", path)
	}
	file, err := os.OpenFile(expanded, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, errors.Wrap(err, "opening log file")
	}
	return New(file, level, false), file.Close, nil
}
