package logging

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRotatedPath(t *testing.T) {
	now := time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC)
	got := rotatedPath("/tmp/log", now)
	want := filepath.Join("/tmp/log", "log-2026-07-29.log")
	if got != want {
		t.Errorf("rotatedPath() = %q, want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		mode  Mode
	}{
		{"debug", ModeTUI},
		{"info", ModeTUI},
		{"error", ModeTUI},
		{"", ModeTUI},
		{"debug", ModeCommand},
	}
	for _, tt := range tests {
		_ = parseLevel(tt.level, tt.mode)
	}
}

func TestParseLevelCommandModeFloorsAtInfo(t *testing.T) {
	got := parseLevel("error", ModeCommand)
	if got.String() != "info" {
		t.Errorf("parseLevel(error, ModeCommand) = %v, want info", got)
	}
}

func TestNewCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Options{Dir: dir, Level: "debug", Mode: ModeTUI})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger == nil {
		t.Fatal("New() returned nil logger")
	}
	logger.Info("hello")

	entries, err := filepath.Glob(filepath.Join(dir, "log", "log-*.log"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one rotated log file, got %d", len(entries))
	}
}
