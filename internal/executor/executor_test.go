package executor

import (
	"bytes"
	"context"
	"runtime"
	"testing"
)

func TestRunDryRunDoesNotSpawn(t *testing.T) {
	var stdout bytes.Buffer
	e := New()
	res, err := e.Run(context.Background(), "echo hello", Options{DryRun: true, Stdout: &stdout})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if stdout.String() != "echo hello\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "echo hello\n")
	}
}

func TestRunSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}
	var stdout bytes.Buffer
	e := &Executor{Shell: "/bin/sh"}
	res, err := e.Run(context.Background(), "echo hi", Options{Stdout: &stdout})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if stdout.String() != "hi\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "hi\n")
	}
}

func TestRunQuietSuppressesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}
	var stdout bytes.Buffer
	e := &Executor{Shell: "/bin/sh"}
	res, err := e.Run(context.Background(), "echo hi", Options{Stdout: &stdout, Quiet: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}
	e := &Executor{Shell: "/bin/sh"}
	res, err := e.Run(context.Background(), "exit 7", Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.ExitCode != 7 {
		t.Errorf("ExitCode = %d, want 7", res.ExitCode)
	}
}
