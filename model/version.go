// Package model holds the types shared by the tracker, the storage backends and the CLI.
package model

// VersionInfo is the release metadata stamped into the binary at link time.
// Commit is what the static metadata provider reports as the build.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}
