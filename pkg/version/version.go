// Package version holds the CLI version, overridden at build time via
// -ldflags "-X github.com/anaghshineh/datahub/pkg/version.Version=...".
package version

// Version is the semantic version of this build.
var Version = "0.0.1"
