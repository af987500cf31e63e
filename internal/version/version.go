// Package version exposes the build version stamped via ldflags.
package version

// version is overridden at build time:
//
//	-ldflags "-X github.com/bkyoung/micro-commit/internal/version.version=v1.2.3"
var version = "v0.0.0"

// Value returns the CLI version.
func Value() string {
	return version
}
