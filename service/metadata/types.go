// Package metadata reports the version and build of the running application.
package metadata

import "errors"

var (
	// ErrNoVersion is returned when no version is known.
	ErrNoVersion = errors.New("no application version")
	// ErrNoBuild is returned when no build identifier is known.
	ErrNoBuild = errors.New("no application build")
)

// Service is the interface for application metadata providers.
type Service interface {
	CurrentVersion() (string, error)
	CurrentBuild() (string, error)
}
