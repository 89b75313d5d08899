package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/theirongolddev/lima/internal/config"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	logger, err := New(config.LogConfig{}, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zap.ErrorLevel) {
		t.Fatal("logger without file is enabled")
	}
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lima.log")
	logger, err := New(config.LogConfig{File: path}, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("transition", zap.String("from", "welcome"), zap.String("to", "onboarding"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("log line %q is not JSON: %v", line, err)
	}
	if rec["msg"] != "transition" || rec["to"] != "onboarding" || rec["logger"] != "lima" {
		t.Fatalf("log record = %v", rec)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lima.log")
	logger, err := New(config.LogConfig{File: path}, "warn")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zap.InfoLevel) {
		t.Fatal("info enabled at warn level")
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lima.log")
	if _, err := New(config.LogConfig{File: path}, "loud"); err == nil {
		t.Fatal("New accepted level \"loud\"")
	}
}
