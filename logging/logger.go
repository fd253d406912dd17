package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel maps a case-insensitive level name to a LogLevel. An empty
// string yields LogLevelInfo.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger defines the minimal logging interface. Args are slog-style
// alternating keys and values.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// LoggerConfig configures construction of a KernelLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
	KernelID  string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// KernelLogger wraps slog.Logger adding the kernel id and component to every
// record. With* methods return scoped copies and leave the receiver intact.
type KernelLogger struct {
	logger    *slog.Logger
	level     LogLevel
	component string
	kernelID  string
	attrs     []any
}

// NewKernelLogger builds a KernelLogger from a config (or defaults if nil).
func NewKernelLogger(cfg *LoggerConfig) *KernelLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return &KernelLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component, kernelID: cfg.KernelID}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *KernelLogger) clone() *KernelLogger {
	nl := *l
	nl.attrs = append([]any(nil), l.attrs...)
	return &nl
}

// With returns a logger attaching the given key/value pairs to every record.
func (l *KernelLogger) With(args ...any) *KernelLogger {
	nl := l.clone()
	nl.attrs = append(nl.attrs, args...)
	return nl
}

// WithComponent sets the logical component (kernel, builder, memory, ...).
func (l *KernelLogger) WithComponent(c string) *KernelLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithKernelID sets the kernel instance identifier.
func (l *KernelLogger) WithKernelID(id string) *KernelLogger {
	nl := l.clone()
	nl.kernelID = id
	return nl
}

func (l *KernelLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}

	all := make([]any, 0, len(l.attrs)+len(args)+4)
	if l.component != "" {
		all = append(all, "component", l.component)
	}
	if l.kernelID != "" {
		all = append(all, "kernel_id", l.kernelID)
	}
	all = append(all, l.attrs...)
	all = append(all, args...)

	l.logger.Log(context.Background(), level, msg, all...)
}

// Debug logs at debug level.
func (l *KernelLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *KernelLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *KernelLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *KernelLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

var (
	_ Logger = (*KernelLogger)(nil)
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = NoOpLogger{}
)
