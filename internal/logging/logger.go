package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// Output defaults to stderr. The playground points it at a session file
	// so log lines never land on the screen it draws.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a configured level name onto a zerolog level, falling back
// to info for anything unknown.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// ApplyEnv overrides cfg from environment variables
// TILEMUX_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TILEMUX_LOG_FORMAT: json, console (default: console)
func ApplyEnv(cfg Config) Config {
	if level := os.Getenv("TILEMUX_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("TILEMUX_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}
	return cfg
}

// NewFromEnv creates a stderr logger based on environment variables.
func NewFromEnv() zerolog.Logger {
	return New(ApplyEnv(DefaultConfig()))
}
