package logger

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		globalMu.Lock()
		defer globalMu.Unlock()
		if undoGlobal != nil {
			undoGlobal()
			undoGlobal = nil
		}
		if global != nil {
			_ = global.Close()
			global = nil
		}
	})
}

func TestDefault_BeforeInit(t *testing.T) {
	resetGlobal(t)

	if Default() != nop {
		t.Error("Default() before Init should return the nop logger")
	}
	// Must not panic without a configured sink.
	Get("early").Info("dropped")
}

func TestInit_Once(t *testing.T) {
	resetGlobal(t)
	opts := []Option{WithWorkDir(t.TempDir()), WithClock(fixedClock{testTime})}

	first, err := Init(Config{Dir: "first"}, opts...)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	second, err := Init(Config{Dir: "second"}, opts...)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Init() error = %v, want ErrAlreadyInitialized", err)
	}
	if second != first {
		t.Error("second Init() should return the installed logger")
	}
	if Default() != first {
		t.Error("Default() should return the installed logger")
	}
	if strings.Contains(first.Path(), "second") {
		t.Errorf("Path() = %q, second configuration must not take effect", first.Path())
	}
}

func TestInit_RoutesGlobals(t *testing.T) {
	resetGlobal(t)

	l, err := Init(Config{}, WithWorkDir(t.TempDir()), WithClock(fixedClock{testTime}))
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Get("/src/app/main.go").Info("via get")
	_, _, getLine, _ := runtime.Caller(0)
	zap.L().Named("zap").Info("via zap")
	_, _, zapLine, _ := runtime.Caller(0)

	lines := readLines(t, l.Path())
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
	if want := fmt.Sprintf("INFO main.go: (line:%d) - via get", getLine-1); !strings.HasSuffix(lines[0], want) {
		t.Errorf("line = %q, want suffix %q", lines[0], want)
	}
	if want := fmt.Sprintf("INFO zap: (line:%d) - via zap", zapLine-1); !strings.HasSuffix(lines[1], want) {
		t.Errorf("line = %q, want suffix %q", lines[1], want)
	}
}

func TestGet_DefaultNameIsCallerFile(t *testing.T) {
	resetGlobal(t)

	l, err := Init(Config{}, WithWorkDir(t.TempDir()))
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	Get("").Info("default")

	lines := readLines(t, l.Path())
	if len(lines) != 1 || !strings.Contains(lines[0], " global_test.go: (line:") {
		t.Errorf("lines = %q, want name global_test.go", lines)
	}
}
