package logger

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrAlreadyInitialized is returned by Init once a process-wide logger is installed.
var ErrAlreadyInitialized = errors.New("logger: already initialized")

var (
	globalMu   sync.Mutex
	global     *FileLogger
	undoGlobal func()
	nop        = NewNop()
)

// Init installs the process-wide logger and routes zap.L() to its file.
// Only the first successful call takes effect: later calls return the
// installed logger together with ErrAlreadyInitialized and create no file.
func Init(cfg Config, opts ...Option) (*FileLogger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return global, ErrAlreadyInitialized
	}

	l, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	global = l
	undoGlobal = zap.ReplaceGlobals(l.root.WithOptions(zap.AddCallerSkip(-1)))
	return l, nil
}

// Default returns the process-wide logger, or a nop logger before Init.
func Default() *FileLogger {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global == nil {
		return nop
	}
	return global
}

// Get returns a handle on the process-wide logger. An empty name tags
// records with the caller's source file name.
func Get(name string) *Handle {
	return Default().named(name, 2)
}
