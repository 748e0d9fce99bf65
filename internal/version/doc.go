// Package version exposes build metadata for ab-modules.
//
// Version, Commit and BuildTime are injected via -ldflags "-X" and default to
// values suitable for local builds.
package version
