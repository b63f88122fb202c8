package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileNameLayout is the time layout of log file names, e.g. 08_17_2025_14_30_55.
const FileNameLayout = "01_02_2006_15_04_05"

var _ Logger = (*Handle)(nil)

// FileLogger owns one timestamped log file and hands out named handles
// that write to it.
type FileLogger struct {
	root *zap.Logger
	file *os.File
	dir  string
	path string
}

// Handle is a named view over a FileLogger. It holds no state of its own.
type Handle struct {
	logger *zap.SugaredLogger
}

type options struct {
	clock   Clock
	workDir string
}

// Option configures a FileLogger.
type Option func(*options)

// WithClock sets the clock used for the file name and record timestamps.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithWorkDir sets the directory the log directory is resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(o *options) { o.workDir = dir }
}

// FileName returns the log file name for a logger constructed at t.
func FileName(t time.Time) string {
	return t.Format(FileNameLayout) + ".log"
}

// New creates the log directory if needed and opens a log file named after
// the current time in append mode. Every call owns its own file handle;
// two loggers constructed in the same second share the file name and both
// append to it.
func New(cfg Config, opts ...Option) (*FileLogger, error) {
	o := options{clock: System()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		o.workDir = wd
	}

	dir := cfg.Dir
	if dir == "" {
		dir = DefaultDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(o.workDir, dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, FileName(o.clock.Now()))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(newLineEncoder(), zapcore.Lock(f), parseLevel(cfg.Level))
	root := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.WithClock(zapClock{o.clock}),
	)

	return &FileLogger{root: root, file: f, dir: dir, path: path}, nil
}

// parseLevel falls back to info for unknown level names.
func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning":
		return zapcore.WarnLevel
	case "critical":
		return zapcore.FatalLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// Named returns a handle tagged with the final path component of name.
// An empty name tags records with the caller's source file name.
func (l *FileLogger) Named(name string) *Handle {
	return l.named(name, 2)
}

func (l *FileLogger) named(name string, skip int) *Handle {
	if name == "" {
		if _, file, _, ok := runtime.Caller(skip); ok {
			name = file
		}
	}
	return &Handle{logger: l.root.Named(filepath.Base(name)).Sugar()}
}

// Dir returns the resolved log directory.
func (l *FileLogger) Dir() string { return l.dir }

// Path returns the log file path. It is empty for a nop logger.
func (l *FileLogger) Path() string { return l.path }

// Sync flushes buffered records to disk.
func (l *FileLogger) Sync() error {
	return l.root.Sync()
}

// Close flushes and closes the log file. Handles must not be used after.
func (l *FileLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return multierr.Combine(l.root.Sync(), l.file.Close())
}

func (h *Handle) Debug(msg string) { h.logger.Debug(msg) }

func (h *Handle) Info(msg string) { h.logger.Info(msg) }

func (h *Handle) Warn(msg string) { h.logger.Warn(msg) }

func (h *Handle) Error(msg string) { h.logger.Error(msg) }

func (h *Handle) Debugf(template string, args ...any) { h.logger.Debugf(template, args...) }

func (h *Handle) Infof(template string, args ...any) { h.logger.Infof(template, args...) }

func (h *Handle) Warnf(template string, args ...any) { h.logger.Warnf(template, args...) }

func (h *Handle) Errorf(template string, args ...any) { h.logger.Errorf(template, args...) }

func (h *Handle) DebugW(msg string, keysAndValues ...any) {
	h.logger.Debugw(msg, keysAndValues...)
}

func (h *Handle) InfoW(msg string, keysAndValues ...any) {
	h.logger.Infow(msg, keysAndValues...)
}

func (h *Handle) WarnW(msg string, keysAndValues ...any) {
	h.logger.Warnw(msg, keysAndValues...)
}

func (h *Handle) ErrorW(msg string, keysAndValues ...any) {
	h.logger.Errorw(msg, keysAndValues...)
}

func (h *Handle) Sync() error {
	return h.logger.Sync()
}

// zapClock adapts Clock to zapcore.Clock.
type zapClock struct {
	Clock
}

func (zapClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
