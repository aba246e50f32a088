// Package version provides build version information.
package version

import "fmt"

// Build information, set via -ldflags at release time.
//
//nolint:gochecknoglobals // Populated by the linker
var (
	Version = "dev"
	Commit  = ""
)

// String returns the human-readable version string.
func String() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
