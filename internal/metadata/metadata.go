// Package metadata exposes build-time identifying information, populated
// via -ldflags for Version, Commit, and BuildDate.
package metadata

import "fmt"

// Build-time variables, set via -ldflags "-X ...=...". Left at their
// defaults below, they describe a local/dev build.
var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git commit hash this build was produced from.
	Commit = "unknown"
	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// AppName is the binary and configuration-directory name.
const AppName = "cl"

// String returns a human-readable version string, e.g. for --version output.
func String() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
