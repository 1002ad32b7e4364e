package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"info", "info", slog.LevelInfo},
		{"debug", "debug", slog.LevelDebug},
		{"trace", "trace", LevelTrace},
		{"uppercase INFO", "INFO", slog.LevelInfo},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"mixed case Trace", "Trace", LevelTrace},
		{"unknown defaults to info", "verbose", slog.LevelInfo},
		{"empty defaults to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name       string
		level      string
		logAtDebug bool
		logAtInfo  bool
	}{
		{"info filters debug", "info", false, true},
		{"debug passes debug", "debug", true, true},
		{"trace passes debug", "trace", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(tt.level, &buf)

			logger.Debug("debug message")
			hasDebug := strings.Contains(buf.String(), "debug message")
			if hasDebug != tt.logAtDebug {
				t.Errorf("debug message visible = %v, want %v (buf: %q)", hasDebug, tt.logAtDebug, buf.String())
			}

			buf.Reset()
			logger.Info("info message")
			hasInfo := strings.Contains(buf.String(), "info message")
			if hasInfo != tt.logAtInfo {
				t.Errorf("info message visible = %v, want %v (buf: %q)", hasInfo, tt.logAtInfo, buf.String())
			}
		})
	}
}

func TestLevelTrace(t *testing.T) {
	// Trace should be below debug (more verbose)
	if LevelTrace >= slog.LevelDebug {
		t.Errorf("LevelTrace (%d) should be less than LevelDebug (%d)", LevelTrace, slog.LevelDebug)
	}
}

func TestNewTraceLogger_InfoLevel(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "info")

	// At info level, trace logger should be nil
	if tl != nil {
		t.Error("expected nil TraceLogger at info level")
	}

	// Nil logger should still be safe to use
	tl.Log(TraceEvent{Persona: "einstein", Outcome: "enriched"})

	path := filepath.Join(dir, "traces.jsonl")
	if _, err := os.Stat(path); err == nil {
		t.Error("traces.jsonl should not exist at info level")
	}
}

func TestNewTraceLogger_DebugLevel(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")
	defer tl.Close()

	tl.Log(TraceEvent{Persona: "einstein", Category: "scientist", Outcome: "enriched"})

	path := filepath.Join(dir, "traces.jsonl")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read traces.jsonl: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("failed to parse JSONL entry: %v", err)
	}

	if entry["outcome"] != "enriched" {
		t.Errorf("outcome = %v, want enriched", entry["outcome"])
	}
	if entry["persona"] != "einstein" {
		t.Errorf("persona = %v, want einstein", entry["persona"])
	}
	if entry["category"] != "scientist" {
		t.Errorf("category = %v, want scientist", entry["category"])
	}
	if entry["time"] == "" {
		t.Error("expected stamped 'time' field in trace entry")
	}
	if _, ok := entry["error"]; ok {
		t.Error("empty error should be omitted from the entry")
	}
}

func TestNewTraceLogger_MultipleWrites(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")
	defer tl.Close()

	tl.Log(TraceEvent{Persona: "ada", Outcome: "enriched"})
	tl.Log(TraceEvent{Persona: "alan", Outcome: "already_enhanced"})

	path := filepath.Join(dir, "traces.jsonl")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read traces.jsonl: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(data))
	}

	var first, second map[string]any
	json.Unmarshal([]byte(lines[0]), &first)
	json.Unmarshal([]byte(lines[1]), &second)

	if first["persona"] != "ada" || first["outcome"] != "enriched" {
		t.Errorf("first entry = %v, want ada/enriched", first)
	}
	if second["persona"] != "alan" || second["outcome"] != "already_enhanced" {
		t.Errorf("second entry = %v, want alan/already_enhanced", second)
	}
}

func TestTraceLogger_NilSafety(t *testing.T) {
	var tl *TraceLogger
	tl.Log(TraceEvent{Outcome: "should_not_panic"})
	tl.Close()
}

func TestTraceLogger_PreservesExplicitTime(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")
	defer tl.Close()

	tl.Log(TraceEvent{Time: "2024-01-01T00:00:00Z", Persona: "ada", Outcome: "enriched"})

	data, err := os.ReadFile(filepath.Join(dir, "traces.jsonl"))
	if err != nil {
		t.Fatalf("failed to read traces.jsonl: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("failed to parse JSONL entry: %v", err)
	}
	if entry["time"] != "2024-01-01T00:00:00Z" {
		t.Errorf("time = %v, want the caller's timestamp", entry["time"])
	}
}

func TestTraceLogger_LogAfterClose(t *testing.T) {
	dir := t.TempDir()
	tl := NewTraceLogger(dir, "debug")

	tl.Log(TraceEvent{Persona: "ada", Outcome: "enriched"})
	tl.Close()

	// Should be a no-op, not panic or error
	tl.Log(TraceEvent{Persona: "alan", Outcome: "enriched"})
}

func TestNewTraceLogger_CreatesDir(t *testing.T) {
	base := t.TempDir()
	nestedDir := filepath.Join(base, "sub", "dir")

	tl := NewTraceLogger(nestedDir, "debug")
	if tl == nil {
		t.Fatal("expected non-nil TraceLogger when dir needs creation")
	}
	defer tl.Close()

	tl.Log(TraceEvent{Persona: "ada", Outcome: "enriched"})

	path := filepath.Join(nestedDir, "traces.jsonl")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("traces.jsonl should exist after dir creation: %v", err)
	}
}
