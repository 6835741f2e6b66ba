package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewthehan/hovertip/internal/config"
)

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	m := NewManager()
	defer func() { _ = m.Close() }()

	err := m.Configure(config.LoggingConfig{Level: "loud"}, "")
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestConfigureCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	m := NewManager()
	defer func() { _ = m.Close() }()

	if err := m.Configure(config.LoggingConfig{Level: "debug", LogToFile: true}, path); err != nil {
		t.Fatalf("configure logging: %v", err)
	}

	m.Logger("test").Info("hello")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected log file to contain output")
	}
}

func TestLoggerCarriesComponent(t *testing.T) {
	m := NewManager()
	defer func() { _ = m.Close() }()

	if m.Logger("tooltip.manager") == nil {
		t.Fatal("expected component logger")
	}
}
