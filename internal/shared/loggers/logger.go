package loggers

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

var utcTimestamps sync.Once

const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures New.
type Options struct {
	Level string
	// Format is FormatJSON (default) or FormatConsole. The error file is always JSON.
	Format string
	// ErrorFile, when set, receives a copy of every error-level entry.
	ErrorFile string
	// Output defaults to os.Stdout.
	Output io.Writer
}

// New creates a new zerolog logger based on the provided options.
// The returned close function releases the error file, if one was opened.
func New(opts Options) (Logger, func() error, error) {
	noop := func() error { return nil }

	zerologLevel, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	utcTimestamps.Do(func() {
		zerolog.TimestampFunc = func() time.Time {
			return time.Now().UTC()
		}
	})

	var output io.Writer = os.Stdout
	if opts.Output != nil {
		output = opts.Output
	}
	switch opts.Format {
	case "", FormatJSON:
	case FormatConsole:
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: opts.Output != nil}
	default:
		return zerolog.Nop(), noop, fmt.Errorf("unknown log format %q", opts.Format)
	}

	closeFn := noop
	if opts.ErrorFile != "" {
		file, err := os.OpenFile(opts.ErrorFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("failed to open error log file %q: %w", opts.ErrorFile, err)
		}
		output = zerolog.MultiLevelWriter(output, &minLevelWriter{w: file, min: zerolog.ErrorLevel})
		closeFn = file.Close
	}

	logger := zerolog.New(output).
		Level(zerologLevel).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, closeFn, nil
}

// Ctx extracts a logger from the context.
// Returns a disabled logger if no logger is found in context.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}

// minLevelWriter drops entries below min.
type minLevelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (m *minLevelWriter) Write(p []byte) (int, error) {
	return m.w.Write(p)
}

func (m *minLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < m.min {
		return len(p), nil
	}
	return m.w.Write(p)
}
