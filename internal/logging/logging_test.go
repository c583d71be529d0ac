package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useLogFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "picker.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
	})
	return path
}

func TestTraceWritesJSONLinesOnlyWhenEnabled(t *testing.T) {
	path := useLogFile(t)

	Trace("picker.sync", map[string]interface{}{"rows": 3})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("picker.sync", map[string]interface{}{"rows": 3})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode trace line: %v", err)
	}
	if entry.Event != "picker.sync" || entry.Payload["rows"] != float64(3) {
		t.Fatalf("unexpected trace entry: %#v", entry)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := useLogFile(t)
	Error(nil)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "boom") {
		t.Fatalf("expected error in log, got %q", data)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default log path, got %s", Path())
	}
}
