package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smileynet/contactdesk/internal/config"
)

func TestNew_EmptyFileIsNop(t *testing.T) {
	logger, err := New(config.Log{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.Core().Enabled(0) {
		t.Error("no-op logger should not enable any level")
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	// Given: a log file in a directory that does not exist yet
	path := filepath.Join(t.TempDir(), "logs", "cd.log")

	// When: a logger is built and used
	logger, err := New(config.Log{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("contact added")
	_ = logger.Sync()

	// Then: the file holds a JSON entry with the message
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	line := strings.TrimSpace(string(data))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log line is not JSON: %q", line)
	}
	if entry["msg"] != "contact added" {
		t.Errorf("msg = %v, want %q", entry["msg"], "contact added")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cd.log")

	logger, err := New(config.Log{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hidden")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry written at warn level")
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.Log{File: filepath.Join(t.TempDir(), "cd.log"), Level: "chatty"})
	if err == nil {
		t.Fatal("New(invalid level) should return error")
	}
}
