// Package logging builds the zerolog logger used across stockdeck. The TUI
// owns the terminal, so output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Config selects where and how logs are written.
type Config struct {
	Path    string // log file; created with its parent directory
	Level   string // trace, debug, info, warn, error
	Format  string // json (default) or console
	Session string // attached to every event when set
}

// Logger wraps zerolog so packages can take it as a dependency.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New opens the log file and returns a logger writing to it.
func New(cfg Config) (*Logger, error) {
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := newLogger(file, cfg)
	l.closer = file
	return l, nil
}

// NewWriter returns a logger writing to w. Used by tests and the -check mode.
func NewWriter(w io.Writer, cfg Config) *Logger {
	return newLogger(w, cfg)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func newLogger(w io.Writer, cfg Config) *Logger {
	if strings.EqualFold(strings.TrimSpace(cfg.Format), "console") {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "2006-01-02 15:04:05"}
	}
	ctx := zerolog.New(w).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Session != "" {
		ctx = ctx.Str("session", cfg.Session)
	}
	return &Logger{zl: ctx.Logger()}
}

// ParseLevel maps a level name to zerolog; unknown names are info.
func ParseLevel(s string) zerolog.Level {
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

// Debug starts a debug level event.
func (l *Logger) Debug() *zerolog.Event {
	zl := l.logger()
	return zl.Debug()
}

// Info starts an info level event.
func (l *Logger) Info() *zerolog.Event {
	zl := l.logger()
	return zl.Info()
}

// Warn starts a warning level event.
func (l *Logger) Warn() *zerolog.Event {
	zl := l.logger()
	return zl.Warn()
}

// Error starts an error level event.
func (l *Logger) Error() *zerolog.Event {
	zl := l.logger()
	return zl.Error()
}

// Component returns a child logger tagged with a component name.
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.logger().With().Str("component", name).Logger()}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func (l *Logger) logger() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.zl
}
