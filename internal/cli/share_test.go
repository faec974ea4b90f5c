package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/storage"
)

func TestShareExportWritesRestrictedSubset(t *testing.T) {
	app, _, stdout := newTestApp([]command.Command{
		{Namespace: "work", Alias: "build", Command: "make build"},
		{Namespace: "home", Alias: "mow", Command: "echo mow"},
	})

	path := filepath.Join(t.TempDir(), "export.toml")
	cmd := newShareExportCommand(app)
	cmd.SetArgs([]string{"-f", path, "-n", "work"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	m, err := storage.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if _, ok := m["home"]; ok {
		t.Error("expected the home namespace to be excluded from the export")
	}
	if len(m["work"]) != 1 {
		t.Errorf("work namespace has %d commands, want 1", len(m["work"]))
	}
	if !strings.Contains(stdout.String(), "exported to") {
		t.Errorf("stdout = %q, want confirmation message", stdout.String())
	}
}

func TestShareImportSkipsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.toml")
	if err := storage.SaveAt(command.CommandMap{
		"work": {{Namespace: "work", Alias: "build", Command: "make build"}},
	}, path); err != nil {
		t.Fatalf("SaveAt() error = %v", err)
	}

	app, _, stdout := newTestApp([]command.Command{
		{Namespace: "work", Alias: "build", Command: "old command"},
	})

	cmd := newShareImportCommand(app)
	cmd.SetArgs([]string{"-f", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "skipped work/build") {
		t.Errorf("stdout = %q, want a skipped-duplicate notice", stdout.String())
	}

	c, err := app.Store.Find("build", "work")
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if c.Command != "old command" {
		t.Errorf("Command = %q, want the original to survive the skip", c.Command)
	}
}
