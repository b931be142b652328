package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	cserrors "github.com/YuminosukeSato/costlearn/pkg/errors"
)

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl zerolog.Logger
}

// Debug implements Logger.Debug.
func (l *zerologLogger) Debug(msg string, fields ...any) { l.emit(l.zl.Debug(), msg, fields) }

// Info implements Logger.Info.
func (l *zerologLogger) Info(msg string, fields ...any) { l.emit(l.zl.Info(), msg, fields) }

// Warn implements Logger.Warn.
func (l *zerologLogger) Warn(msg string, fields ...any) { l.emit(l.zl.Warn(), msg, fields) }

// Error implements Logger.Error.
func (l *zerologLogger) Error(msg string, fields ...any) { l.emit(l.zl.Error(), msg, fields) }

func (l *zerologLogger) emit(ev *zerolog.Event, msg string, fields []any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		if err, ok := fields[i+1].(error); ok && key == ErrAttrKey {
			ev = ev.Err(err)
			if code := ErrorCode(err); code != "" {
				ev = ev.Str(ErrorCodeKey, code)
			}
			continue
		}
		ev = ev.Interface(key, fields[i+1])
	}
	ev.Msg(msg)
}

// With implements Logger.With.
func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.zl.With()
	for i := 0; i+1 < len(fields); i += 2 {
		ctx = ctx.Interface(fmt.Sprint(fields[i]), fields[i+1])
	}
	return &zerologLogger{zl: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return l.zl.GetLevel() <= toZerologLevel(level)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// ZerologProvider hands out zerolog-backed loggers. Installing it also routes
// the library warning stream through zerolog, so structured warning types
// such as SingleCandidateWarning are emitted as objects rather than flat
// strings.
type ZerologProvider struct {
	mu sync.RWMutex
	zl zerolog.Logger
}

// NewZerologProvider creates a ZerologProvider around the given logger and
// wires the warning stream into it.
func NewZerologProvider(zl zerolog.Logger) *ZerologProvider {
	p := &ZerologProvider{zl: zl}
	cserrors.SetZerologWarnFunc(func(warning error) {
		p.mu.RLock()
		logger := p.zl
		p.mu.RUnlock()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(obj).Msg("reduction warning")
			return
		}
		logger.Warn().Err(warning).Msg("reduction warning")
	})
	return p
}

// GetLogger implements LoggerProvider.GetLogger.
func (p *ZerologProvider) GetLogger() Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.zl}
}

// GetLoggerWithName implements LoggerProvider.GetLoggerWithName.
func (p *ZerologProvider) GetLoggerWithName(name string) Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &zerologLogger{zl: p.zl.With().Str(ComponentKey, name).Logger()}
}

// SetLevel implements LoggerProvider.SetLevel.
func (p *ZerologProvider) SetLevel(level Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.zl = p.zl.Level(toZerologLevel(level))
}
