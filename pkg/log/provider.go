package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// Debug implements Logger.Debug.
func (l *slogLogger) Debug(msg string, fields ...any) { l.logger.Debug(msg, fields...) }

// Info implements Logger.Info.
func (l *slogLogger) Info(msg string, fields ...any) { l.logger.Info(msg, fields...) }

// Warn implements Logger.Warn.
func (l *slogLogger) Warn(msg string, fields ...any) { l.logger.Warn(msg, fields...) }

// Error implements Logger.Error.
func (l *slogLogger) Error(msg string, fields ...any) { l.logger.Error(msg, fields...) }

// With implements Logger.With.
func (l *slogLogger) With(fields ...any) Logger {
	return &slogLogger{logger: l.logger.With(fields...)}
}

// Enabled implements Logger.Enabled.
func (l *slogLogger) Enabled(ctx context.Context, level Level) bool {
	return l.logger.Enabled(ctx, slog.Level(level))
}

// SlogProvider is the default LoggerProvider. It hands out slog-backed
// loggers that write JSON records through the error formatting handler.
type SlogProvider struct {
	level  *slog.LevelVar
	logger *slog.Logger
}

// NewSlogProvider creates a SlogProvider writing to w at info level.
func NewSlogProvider(w io.Writer) *SlogProvider {
	level := &slog.LevelVar{}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogProvider{
		level:  level,
		logger: slog.New(WrapByErrFmtHandler(handler)),
	}
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *SlogProvider) GetLogger() Logger {
	return &slogLogger{logger: p.logger}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *SlogProvider) GetLoggerWithName(name string) Logger {
	return &slogLogger{logger: p.logger.With(ComponentKey, name)}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *SlogProvider) SetLevel(level Level) {
	p.level.Set(slog.Level(level))
}

var (
	providerMu sync.RWMutex
	provider   LoggerProvider = NewSlogProvider(os.Stderr)
)

// SetProvider replaces the package-level logger provider. Reductions resolve
// their logger through GetLogger at call time, so a provider installed before
// training takes effect everywhere.
func SetProvider(p LoggerProvider) {
	providerMu.Lock()
	defer providerMu.Unlock()
	provider = p
}

// GetLogger returns the default logger from the current provider.
func GetLogger() Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLogger()
}

// GetLoggerWithName returns a component logger from the current provider.
func GetLoggerWithName(name string) Logger {
	providerMu.RLock()
	defer providerMu.RUnlock()
	return provider.GetLoggerWithName(name)
}
