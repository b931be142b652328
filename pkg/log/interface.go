// Package log provides a structured logging interface for cost-sensitive
// reduction operations.
//
// This package defines a minimal, slog-compatible logging interface that allows
// for flexible implementation switching while providing reduction-specific
// structured logging capabilities. The interface is designed to integrate
// seamlessly with Go's standard log/slog package and with zerolog.
//
// Key features:
//   - slog-compatible interface for future-proofing
//   - reduction-specific structured attributes (operations, label counts, costs)
//   - Context-aware logging with field chaining
//   - Performance-optimized with lazy evaluation support
//   - Test-friendly with configurable output destinations
//
// Example usage:
//
//	logger := log.GetLogger().With(
//	    log.ReductionKey, "csoaa",
//	    log.NumLabelsKey, 10,
//	)
//	logger.Info("Training pass started",
//	    log.OperationKey, log.OperationTrain,
//	    log.ExamplesKey, 1000,
//	)
package log

import (
	"context"
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// This interface provides the core logging methods with structured field
// support, allowing rich contextual information to be included with log
// messages. It is implementation-agnostic, enabling easy switching between
// logging backends while maintaining a consistent API.
//
// The interface supports method chaining through the With method, allowing
// creation of contextual loggers with pre-populated fields.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	// Debug logs carry detailed diagnostic information such as per-example
	// sub-example counts and are usually disabled in production.
	//
	// Example:
	//   logger.Debug("Emitted sub-examples",
	//       log.SubExamplesKey, 9,
	//       log.SkippedPairsKey, 1,
	//   )
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	// Info logs report general operational information about a training or
	// prediction pass.
	//
	// Example:
	//   logger.Info("Training pass completed",
	//       log.ExamplesKey, 1000,
	//       log.DurationMsKey, 5432,
	//   )
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	// Warnings indicate conditions that do not stop an online pass, such as
	// an example skipped for having a single candidate label.
	//
	// Example:
	//   logger.Warn("Example skipped",
	//       log.LabelKey, 3,
	//       log.ErrorCodeKey, log.ErrorEmptyCandidateSet,
	//   )
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If an error value is provided as a field, stack trace information may
	// be automatically included by the handler.
	//
	// Example:
	//   logger.Error("Learn failed",
	//       log.ErrAttrKey, err,
	//       log.OperationKey, log.OperationLearn,
	//   )
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated. This
	// enables contextual loggers that automatically include common fields in
	// all subsequent log messages.
	//
	// Example:
	//   contextLogger := logger.With(
	//       log.ReductionKey, "wap_ldf",
	//   )
	//   contextLogger.Info("Starting training")  // includes the reduction kind
	With(fields ...any) Logger

	// Enabled reports whether the logger emits log records at the given
	// level. Use it to avoid expensive attribute construction for records
	// that would be dropped.
	//
	// Example:
	//   if logger.Enabled(ctx, LevelDebug) {
	//       logger.Debug("Pair details", "pairs", describePairs(ex))
	//   }
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, compatible with slog.Level.
// This type allows for level-based filtering of log messages.
type Level int

// Standard logging levels, values are compatible with slog.Level.
const (
	LevelDebug Level = -4 // Detailed diagnostic information
	LevelInfo  Level = 0  // General operational information
	LevelWarn  Level = 4  // Warning conditions
	LevelError Level = 8  // Error conditions
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider defines an interface for creating and configuring loggers.
// This interface allows for dependency injection and testing with different
// logger implementations.
type LoggerProvider interface {
	// GetLogger returns the default logger instance.
	GetLogger() Logger

	// GetLoggerWithName returns a logger with a specific name/component identifier.
	GetLoggerWithName(name string) Logger

	// SetLevel sets the minimum log level for all loggers created by this provider.
	SetLevel(level Level)
}
