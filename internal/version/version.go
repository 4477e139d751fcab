// Package version exposes build-time version information.
// The variables are intended to be overridden with -ldflags at build time:
//
//	go build -ldflags "-X .../internal/version.Version=1.2.3 ..."
package version

//nolint:gochecknoglobals // These are set via ldflags at build time.
var (
	// Version is the semantic version of the application.
	Version = "1.0.0"

	// Commit is the git commit hash the binary was built from.
	Commit = "none"

	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns just the semantic version.
func Short() string {
	return Version
}

// Full returns the version, commit and build time in a single line.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
