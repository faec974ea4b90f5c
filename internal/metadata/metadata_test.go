package metadata

import "testing"

func TestStringDevBuild(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "dev"

	if got := String(); got != "dev (built from source)" {
		t.Errorf("String() = %q, want dev build message", got)
	}
}

func TestStringReleaseBuild(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = oldV, oldC, oldD }()
	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-07-29"

	want := "1.2.3 (commit: abc123, built: 2026-07-29)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
