// Package version holds build metadata of the filacolia binaries, injected via ldflags:
//
//	-ldflags "-X github.com/kailas-cloud/filacolia/internal/version.Version=v1.0.0"
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
