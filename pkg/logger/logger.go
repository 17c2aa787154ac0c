// Package logger builds the zerolog loggers used across the service.
//
// One root logger is built at startup with New; packages receive a child
// from Component so every event names the part of the service that wrote it.
//
//	TRACE (-1) → DEBUG (0) → INFO (1) → WARN (2) → ERROR (3)
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at construction time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to "info" when empty or unrecognised.
	Level string
	// Pretty enables human-friendly console output. Use false in production
	// to emit pure JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service, when set, is attached to every event as the "service" field.
	Service string
}

// New returns the root logger and applies its level globally.
func New(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(out).
		Level(lvl).
		With().
		Timestamp()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger()
}

// Component returns a child logger tagged with the given component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// DriverSink forwards MongoDB driver log messages to zerolog. It satisfies
// the driver's options.LogSink. Driver info and debug messages are both
// written at debug level.
type DriverSink struct {
	log zerolog.Logger
}

func NewDriverSink(l zerolog.Logger) *DriverSink {
	return &DriverSink{log: Component(l, "mongo-driver")}
}

func (s *DriverSink) Info(level int, message string, keysAndValues ...any) {
	s.log.Debug().
		Int("driver_level", level).
		Fields(keysAndValues).
		Msg(message)
}

func (s *DriverSink) Error(err error, message string, keysAndValues ...any) {
	s.log.Error().
		Err(err).
		Fields(keysAndValues).
		Msg(message)
}

// Verbose reports whether debug events would be written.
func Verbose(l zerolog.Logger) bool {
	return l.GetLevel() <= zerolog.DebugLevel
}

// parseLevel converts a string to a zerolog.Level.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
