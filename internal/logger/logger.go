// Package logger is glint's structured logger. Controllers tag entries with
// the animated subject and engine kind; the CLI picks the sink so that logs
// never draw over the terminal player.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and sink. HumanReadable switches from JSON lines
// to zerolog's console format, which the CLI uses when logging to stderr.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a thin zerolog handle. A nil *Logger is valid and discards
// everything, so packages can hold one without checking.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger writing to opts.Writer, or stderr when unset. An empty
// level means info.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	base := zerolog.New(sink(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

func parseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

func sink(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.HumanReadable {
		return w
	}
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339
	return console
}

func (l *Logger) derive(build func(zerolog.Context) zerolog.Context) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: build(l.base.With()).Logger()}
}

// WithFields returns a logger that adds fields to every entry, e.g. the
// preset name while loading or a subject id while rendering.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return l.derive(func(ctx zerolog.Context) zerolog.Context {
		for key, value := range fields {
			ctx = ctx.Interface(key, value)
		}
		return ctx
	})
}

// ForSubject tags entries with a subject id and its engine kind.
func (l *Logger) ForSubject(subject, engine string) *Logger {
	return l.derive(func(ctx zerolog.Context) zerolog.Context {
		return ctx.Str("subject", subject).Str("engine", engine)
	})
}

// Transition records a lifecycle state change at debug level.
func (l *Logger) Transition(from, to, reason string) {
	if l == nil {
		return
	}
	l.base.Debug().Str("from", from).Str("to", to).Str("reason", reason).Msg("lifecycle transition")
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.base.Debug().Msg(msg)
	}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.base.Info().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.base.Warn().Msg(msg)
	}
}

// Error logs msg at error level with err attached when non-nil. Controllers
// use it for recovered callback panics.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
