// Package logging provides a minimal logging interface and adapters for the
// kernel and its execution contexts.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) taking slog-style key/value pairs. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping any *slog.Logger
//   - KernelLogger, a configurable slog-backed logger with component scoping
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewKernelLogger(&logging.LoggerConfig{Level: logging.LogLevelDebug, Format: "text"})
//	k := kernel.New(func(o *kernel.Options) { o.Logger = logger })
package logging
