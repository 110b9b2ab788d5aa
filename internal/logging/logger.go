// Package logging содержит регистратор логов поверх zerolog
package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var defaultLogger atomic.Pointer[Logger]

func init() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"

	defaultLogger.Store(New(os.Stderr, LevelInfo))
}

// Logger определяет регистратор логов.
type Logger struct {
	level Level
	log   zerolog.Logger
}

// New возвращает новый экземпляр Logger.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, log: zerolog.New(w)}
}

// Discard возвращает Logger, который ничего не пишет.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

// Default возвращает регистратор по умолчанию.
func Default() *Logger {
	return defaultLogger.Load()
}

// SetDefault заменяет регистратор по умолчанию.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger.Store(l)
	}
}

// With возвращает копию Logger с дополнительными полями.
func (l *Logger) With(a ...any) *Logger {
	ctx := l.log.With()
	for i := 0; i+1 < len(a); i += 2 {
		ctx = ctx.Interface(keyOf(a[i]), a[i+1])
	}
	return &Logger{level: l.level, log: ctx.Logger()}
}

// Enabled возвращает true, если уровень логирования разрешён.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level
}

// Log записывает сообщение с парами ключ-значение.
func (l *Logger) Log(level Level, msg string, a ...any) {
	if !l.Enabled(level) {
		return
	}

	ev := l.log.Log().
		Str("level", level.String()).
		Timestamp()

	for i := 0; i+1 < len(a); i += 2 {
		if err, ok := a[i+1].(error); ok {
			ev = ev.AnErr(keyOf(a[i]), err)
			continue
		}
		ev = ev.Interface(keyOf(a[i]), a[i+1])
	}

	ev.Msg(msg)
}

func (l *Logger) Debug(msg string, a ...any) { l.Log(LevelDebug, msg, a...) }
func (l *Logger) Info(msg string, a ...any)  { l.Log(LevelInfo, msg, a...) }
func (l *Logger) Error(msg string, a ...any) { l.Log(LevelError, msg, a...) }

func keyOf(v any) string {
	if key, ok := v.(string); ok {
		return key
	}
	return fmt.Sprint(v)
}

// Debug записывает сообщение с уровнем debug.
func Debug(msg string, a ...any) {
	Default().Log(LevelDebug, msg, a...)
}

// Info записывает сообщение с уровнем info.
func Info(msg string, a ...any) {
	Default().Log(LevelInfo, msg, a...)
}

// Error записывает сообщение с уровнем error.
func Error(msg string, a ...any) {
	Default().Log(LevelError, msg, a...)
}
