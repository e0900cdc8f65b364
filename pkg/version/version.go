// Package version holds build metadata injected via -ldflags, e.g.
//
//	-X github.com/j0kz/mcp-wizard/pkg/version.Version=v1.2.0
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns a formatted full version string including the
// platform.
func GetFullVersion() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (commit: %s, built: %s, %s/%s)", Version, commit, Date, runtime.GOOS, runtime.GOARCH)
}
