package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// TestNewWithWriter_JSON verifies json output carries the component field.
func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("info", "json", &buf)
	if err != nil {
		t.Fatalf("NewWithWriter failed: %v", err)
	}
	Component(logger, "injector").Info("hello")
	_ = logger.Sync()

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["msg"] != "hello" || entry[KeyComponent] != "injector" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

// TestNewWithWriter_LevelFilters verifies entries below the level are dropped.
func TestNewWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", "console", &buf)
	if err != nil {
		t.Fatalf("NewWithWriter failed: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestNewWithWriter_Invalid verifies bad level or format values fail.
func TestNewWithWriter_Invalid(t *testing.T) {
	if _, err := NewWithWriter("loud", "json", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected level error")
	}
	if _, err := NewWithWriter("info", "xml", &bytes.Buffer{}); err == nil {
		t.Fatalf("expected format error")
	}
}

// TestComponent_NilLogger verifies a nil logger yields a usable no-op.
func TestComponent_NilLogger(t *testing.T) {
	Component(nil, "x").Info("ignored")
}
