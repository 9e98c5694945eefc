// Package logger wraps zerolog with the small API the application needs.
//
// The TUI owns stdout, so the production logger writes to a file; tests use
// Nop. All methods are safe on a nil *Logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base zerolog.Logger
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.NoColor = true
		console.TimeFormat = time.RFC3339
		output = console
	}

	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: l}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// DefaultPath returns the log file location under the XDG state directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("slides", "slides.log"))
}

// OpenFile opens (creating if needed) an append-only log file.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// With returns a derived logger that always writes the supplied key/value pairs.
func (l *Logger) With(fields ...any) *Logger {
	if l == nil {
		return nil
	}
	derived := Logger{base: l.base.With().Fields(fields).Logger()}
	return &derived
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string, fields ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Debug(), fields).Msg(msg)
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string, fields ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Info(), fields).Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string, fields ...any) {
	if l == nil {
		return
	}
	withFields(l.base.Warn(), fields).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string, fields ...any) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	withFields(event, fields).Msg(msg)
}

func withFields(e *zerolog.Event, fields []any) *zerolog.Event {
	if len(fields) == 0 {
		return e
	}
	return e.Fields(fields)
}
