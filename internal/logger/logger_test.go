package logger

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func reset() {
	sugar = nil
	once = sync.Once{}
	fallback = sync.Once{}
}

func TestGet_InitializesLazily(t *testing.T) {
	reset()
	t.Cleanup(reset)

	if Get() == nil {
		t.Fatal("expected a logger")
	}
}

func TestInit_WritesRotatingFile(t *testing.T) {
	reset()
	t.Cleanup(reset)

	path := filepath.Join(t.TempDir(), "catalog.log")
	Init(Config{Env: "production", FilePath: path})
	Get().Infow("view state changed", "session_id", "abc")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log file to contain the entry")
	}
}

func TestInit_RunsOnce(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Init(Config{Env: "development"})
	first := Get()
	Init(Config{Env: "production"})

	if Get() != first {
		t.Error("expected the first logger to be kept")
	}
}

func TestInit_ReplacesLazyLogger(t *testing.T) {
	reset()
	t.Cleanup(reset)

	early := Get()
	path := filepath.Join(t.TempDir(), "catalog.log")
	Init(Config{Env: "production", FilePath: path})

	if Get() == early {
		t.Fatal("expected Init to replace the lazily built logger")
	}
	Get().Info("configured")
	Sync()

	if data, err := os.ReadFile(path); err != nil || len(data) == 0 {
		t.Errorf("expected the configured file sink to receive the entry, err=%v", err)
	}
}
