// Package logger is the process-wide logging facade.
//
// Call sites log through a small interface instead of slog directly so
// every line looks the same: context and message first, then typed Fields.
// Subsystems hold a Named logger (analysis, recorder, http) that groups
// their attributes under the subsystem key, and every line carries a
// source attribute pointing at the call site.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Logger is the leveled, context-aware interface handed to subsystems.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Fatal(ctx context.Context, msg string, fields ...Field)

	Named(name string) Logger
}

// Field is one structured key-value attribute.
type Field struct {
	Key   string
	Value interface{}
}

// Field constructors.
func String(key, val string) Field                 { return Field{Key: key, Value: val} }
func Int(key string, val int) Field                { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field        { return Field{Key: key, Value: val} }
func Any(key string, val interface{}) Field        { return Field{Key: key, Value: val} }
func Error(err error) Field                        { return Field{Key: "error", Value: err} }
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

// emitSkipFrames assumes the stack getCaller -> emit -> exported method ->
// call site.
const emitSkipFrames = 3

// emit is the single funnel for every level.
func (s *slogLogger) emit(ctx context.Context, level slog.Level, msg string, fields []Field) {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	attrs = append(attrs, slog.String("source", getCaller()))
	s.l.LogAttrs(ctx, level, msg, attrs...)
}

func (s *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	s.emit(ctx, slog.LevelDebug, msg, fields)
}

func (s *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	s.emit(ctx, slog.LevelInfo, msg, fields)
}

func (s *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	s.emit(ctx, slog.LevelWarn, msg, fields)
}

func (s *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	s.emit(ctx, slog.LevelError, msg, fields)
}

// Fatal logs at error level and exits the process.
func (s *slogLogger) Fatal(ctx context.Context, msg string, fields ...Field) {
	s.emit(ctx, slog.LevelError, msg, fields)
	os.Exit(1)
}

func (s *slogLogger) Named(name string) Logger {
	return &slogLogger{l: s.l.WithGroup(name)}
}

// getCaller renders the call site as path:line relative to the working
// directory so editors can jump to it.
func getCaller() string {
	_, file, line, ok := runtime.Caller(emitSkipFrames)
	if !ok {
		return "unknown:0"
	}
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, file); err == nil {
			return fmt.Sprintf("%s:%d", rel, line)
		}
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

var (
	global   Logger
	levelVar slog.LevelVar
)

// Init installs the global logger: a text handler on stdout gated by a
// dynamic level that starts at info. Calling Init again replaces the
// global logger.
func Init() error {
	levelVar.Set(slog.LevelInfo)
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: &levelVar})
	global = &slogLogger{l: slog.New(h)}
	return nil
}

// Get returns the global logger. It panics when Init has not run; the
// process initializes logging before anything else logs.
func Get() Logger {
	if global == nil {
		panic("logger not initialized. Call logger.Init() first")
	}
	return global
}

// Named returns a logger that groups its attributes under name.
func Named(name string) Logger {
	return Get().Named(name)
}

// Sync flushes buffered entries. slog writes through, so there is nothing
// to flush; the func exists for deferred-cleanup symmetry.
func Sync() error {
	return nil
}

// SetLevel changes the level gate shared by every logger built by Init.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString parses and applies a level: debug, info, warn/warning,
// error. Empty means info.
func SetLevelString(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		SetLevel(slog.LevelDebug)
	case "", "info":
		SetLevel(slog.LevelInfo)
	case "warn", "warning":
		SetLevel(slog.LevelWarn)
	case "error":
		SetLevel(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	return nil
}
