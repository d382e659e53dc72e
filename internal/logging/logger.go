package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type Logger struct {
	debugEnabled atomic.Bool
	pretty       bool
	mu           sync.Mutex
	out          io.Writer
}

type Event struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Fields  map[string]any
}

// New returns a logger writing to stderr, colored when the terminal allows it.
func New(debug bool) *Logger {
	return newLogger(os.Stderr, shouldPrettyPrint(), debug)
}

// NewWithWriter returns a logger writing plain lines to out.
func NewWithWriter(out io.Writer, debug bool) *Logger {
	return newLogger(out, false, debug)
}

func newLogger(out io.Writer, pretty bool, debug bool) *Logger {
	if out == nil {
		panic("logging.New: writer must not be nil")
	}
	logger := &Logger{pretty: pretty, out: out}
	logger.debugEnabled.Store(debug)
	return logger
}

func Field(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

func shouldPrettyPrint() bool {
	term := strings.TrimSpace(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

func (l *Logger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(msg string, fields ...slog.Attr) {
	if l == nil || !l.debugEnabled.Load() {
		return
	}
	l.log(slog.LevelDebug, msg, fields)
}

func (l *Logger) SetDebugEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.debugEnabled.Store(enabled)
}

func (l *Logger) Info(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelInfo, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelWarn, msg, fields)
}

func (l *Logger) Error(msg string, fields ...slog.Attr) {
	if l == nil {
		return
	}
	l.log(slog.LevelError, msg, fields)
}

func (l *Logger) log(level slog.Level, msg string, attrs []slog.Attr) {
	event := Event{
		Time:    time.Now(),
		Level:   level,
		Message: msg,
		Fields:  attrsToMap(attrs),
	}
	line := FormatEventLine(event)
	if l.pretty {
		line = FormatEventANSI(event)
	}
	l.mu.Lock()
	_, _ = io.WriteString(l.out, line)
	l.mu.Unlock()
}
