package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	got := Default()
	if got.QuietMode != false {
		t.Errorf("QuietMode = %v, want false", got.QuietMode)
	}
	if got.LogLevel != LogLevelError {
		t.Errorf("LogLevel = %v, want %v", got.LogLevel, LogLevelError)
	}
	if got.HighlightMatches != true {
		t.Errorf("HighlightMatches = %v, want true", got.HighlightMatches)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Preferences{
		QuietMode:        true,
		LogLevel:         LogLevelDebug,
		HighlightMatches: false,
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", got, Default())
	}
}

func TestCommandsFilePath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := CommandsFilePath()
	if err != nil {
		t.Fatalf("CommandsFilePath() error = %v", err)
	}
	want := filepath.Join(dir, AppName, CommandsFileName)
	if path != want {
		t.Errorf("CommandsFilePath() = %q, want %q", path, want)
	}
}
