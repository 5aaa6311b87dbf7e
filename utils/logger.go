package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger writes leveled lines to a single sink. Every pipeline step takes one.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	Critical(ctx context.Context, msg string, args ...interface{})
}

var logLevels = map[string]int{
	"debug":    0,
	"info":     1,
	"warn":     2,
	"error":    3,
	"critical": 4,
}

type implLogger struct {
	mu    sync.Mutex
	out   io.Writer
	level string
	now   func() time.Time
}

// NewLogger returns a Logger writing to out. Unknown levels behave like "info".
func NewLogger(out io.Writer, level string) Logger {
	return &implLogger{
		out:   out,
		level: strings.ToLower(level),
		now:   time.Now,
	}
}

// NewFileLogger creates <dir>/<script>_<timestamp>.log and returns a Logger
// bound to it. The caller closes the returned file.
func NewFileLogger(dir, script, level string) (Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.log", script, time.Now().Format("20060102_150405"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewLogger(file, level), file, nil
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := logLevels[l.level]
	if !ok {
		currentLevel = logLevels["info"]
	}

	targetLevel, ok := logLevels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(level, msg string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "%s - %s - %s\n", l.now().Format("2006-01-02 15:04:05"), strings.ToUpper(level), fmt.Sprintf(msg, args...))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write("error", msg, args...)
}

func (l *implLogger) Critical(ctx context.Context, msg string, args ...interface{}) {
	l.write("critical", msg, args...)
}
