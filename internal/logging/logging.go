// Package logging provides structured logging using zerolog.
//
// The application configures its sinks from the global configuration
// store right after constructing it: FromStore extracts the log level,
// the optional log-file path, and the console format through the typed
// converters, falling back to defaults for anything missing.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	confstore "github.com/telnet2/go-confstore"
)

// Logger is the global logger instance.
var Logger zerolog.Logger

// Level represents log levels.
type Level = zerolog.Level

// Log levels exposed for convenience.
const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// FilePath, when non-empty, adds a file sink that receives every
	// event alongside Output. The file is opened in append mode.
	FilePath string
	// Pretty enables human-readable console output.
	Pretty bool
	// TimeFormat specifies the time format. Defaults to RFC3339.
	TimeFormat string
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Level:      InfoLevel,
		Output:     os.Stderr,
		Pretty:     false,
		TimeFormat: time.RFC3339,
	}
}

// FromStore builds a Config from the settings under /logging in the
// given store. Missing or mistyped settings keep their defaults, per
// the store's fallback semantics.
func FromStore(st *confstore.Store) Config {
	cfg := DefaultConfig()
	if st == nil {
		return cfg
	}
	cfg.Level = ParseLevel(confstore.ToString(st.Get("/logging/level"), "INFO"))
	cfg.FilePath = confstore.ToString(st.Get("/logging/file"), "")
	cfg.Pretty = confstore.ToString(st.Get("/logging/format"), "json") == "console"
	return cfg
}

// Init initializes the global logger with the given configuration.
// Init returns the error from opening the file sink, if any; the
// console sink is configured regardless.
func Init(cfg Config) error {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = time.RFC3339
	}

	zerolog.TimeFieldFormat = cfg.TimeFormat

	var console io.Writer = cfg.Output
	if cfg.Pretty {
		console = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: cfg.TimeFormat,
		}
	}

	var ferr error
	output := console
	if cfg.FilePath != "" {
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			ferr = err
		} else {
			output = zerolog.MultiLevelWriter(console, f)
		}
	}

	Logger = zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return ferr
}

// ParseLevel parses a log level string (case-insensitive).
// Supported values: DEBUG, INFO, WARN, ERROR, FATAL.
// Returns InfoLevel if the string is not recognized.
func ParseLevel(level string) Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "FATAL":
		return FatalLevel
	default:
		return InfoLevel
	}
}

// Debug starts a new debug level log message.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts a new info level log message.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a new warn level log message.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts a new error level log message.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Fatal starts a new fatal level log message.
// Calling Msg or Send on the returned event will call os.Exit(1).
func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

// init sets up a default logger so the package is usable without
// explicit initialization.
func init() {
	_ = Init(DefaultConfig())
}
