package cli

import (
	"strings"
	"testing"

	"github.com/rvigo/cl/internal/command"
)

func TestMiscCommandFzfLine(t *testing.T) {
	app, _, stdout := newTestApp([]command.Command{
		{Namespace: "work", Alias: "build", Command: "make build"},
	})

	cmd := newMiscCommand(app)
	cmd.SetArgs([]string{"-a", "build", "-n", "work", "-f"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "work.build\tmake build\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestMiscCommandDescribe(t *testing.T) {
	app, _, stdout := newTestApp([]command.Command{
		{Namespace: "work", Alias: "build", Command: "make build"},
	})

	cmd := newMiscCommand(app)
	cmd.SetArgs([]string{"-a", "build", "-n", "work", "-d"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout.String(), "build") || !strings.Contains(stdout.String(), "work") {
		t.Errorf("stdout = %q, want alias and namespace present", stdout.String())
	}
}

func TestMiscCommandHiddenFromHelp(t *testing.T) {
	app, _, _ := newTestApp(nil)
	cmd := newMiscCommand(app)
	if !cmd.Hidden {
		t.Error("expected the misc command to be hidden")
	}
}
