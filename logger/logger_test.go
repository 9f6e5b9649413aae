package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
	cfg = Config{Level: "debug", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
	cfg = Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLogger_ComponentTag(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf), "httpexec")

	l.Info("hello", Fields("status", 200))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry[FieldComponent] != "httpexec" {
		t.Errorf("expected component tag, got %v", entry[FieldComponent])
	}
	if entry["status"] != float64(200) {
		t.Errorf("expected status field, got %v", entry["status"])
	}
}

func TestLogger_WithError(t *testing.T) {
	var buf bytes.Buffer
	l := FromZerolog(zerolog.New(&buf), "")

	l.WithError(errTest{}).Error("boom")

	if !strings.Contains(buf.String(), "test failure") {
		t.Errorf("expected error field in output, got %s", buf.String())
	}
}

func TestNop(t *testing.T) {
	// Must not panic and must not write anywhere.
	Nop().Info("discarded")
}

func TestFields_OddArguments(t *testing.T) {
	m := Fields("a", 1, "trailing")
	if len(m) != 1 || m["a"] != 1 {
		t.Errorf("unexpected fields map: %v", m)
	}
}

type errTest struct{}

func (errTest) Error() string { return "test failure" }
