package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TodoChain/todos-go-node/config"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "todos.log")

	cfg := config.DefaultConfig()
	cfg.LogFormat = config.LogFormatJSON
	cfg.LogPath = logPath

	logger := NewLogger(cfg)
	logger.Info("state committed", "height", 7)

	written, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Log file was not written: %s", err)
	}
	if !strings.Contains(string(written), "state committed") {
		t.Fatal("Log message is missing")
	}
	if !strings.Contains(string(written), "\"height\":7") {
		t.Fatal("Log context is missing")
	}
}

func TestNewLoggerLevelFilter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "todos.log")

	cfg := config.DefaultConfig()
	cfg.LogFormat = config.LogFormatJSON
	cfg.LogPath = logPath
	cfg.LogLevel = "*:error"

	logger := NewLogger(cfg)
	logger.Info("filtered out")
	logger.Error("kept")

	written, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Log file was not written: %s", err)
	}
	if strings.Contains(string(written), "filtered out") {
		t.Fatal("Info record passed an error-level filter")
	}
	if !strings.Contains(string(written), "kept") {
		t.Fatal("Error record was filtered")
	}
}
