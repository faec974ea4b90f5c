package cli

import (
	"strings"
	"testing"

	"github.com/rvigo/cl/internal/config"
)

func TestConfigShowPrintsAllPreferences(t *testing.T) {
	app, _, stdout := newTestApp(nil)

	cmd := newConfigShowCommand(app)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := stdout.String()
	for _, key := range preferenceKeys {
		if !strings.Contains(out, key) {
			t.Errorf("show output missing key %q:\n%s", key, out)
		}
	}
}

func TestConfigGetUnknownKeyErrors(t *testing.T) {
	app, _, _ := newTestApp(nil)

	cmd := newConfigGetCommand(app)
	cmd.SetArgs([]string{"nonsense"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestConfigSetPersistsThroughProvider(t *testing.T) {
	app, provider, stdout := newTestApp(nil)

	cmd := newConfigSetCommand(app)
	cmd.SetArgs([]string{"log-level", "debug"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if provider.prefs.LogLevel != config.LogLevelDebug {
		t.Errorf("LogLevel = %v, want debug", provider.prefs.LogLevel)
	}
	if !strings.Contains(stdout.String(), "log-level = debug") {
		t.Errorf("stdout = %q, want confirmation message", stdout.String())
	}
}

func TestConfigSetInvalidLogLevelErrors(t *testing.T) {
	app, _, _ := newTestApp(nil)

	cmd := newConfigSetCommand(app)
	cmd.SetArgs([]string{"log-level", "verbose"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an invalid log-level")
	}
}
