package tracker

import (
	"context"
	"errors"

	"github.com/thirukguru/version-tracker/model"
)

// Storage keys for the two histories. They must never change between releases,
// otherwise upgraded installs lose their history.
const (
	VersionsKey = "xamVersion"
	BuildsKey   = "xamBuild"
)

var (
	// ErrStorageUnavailable is returned when the key-value store cannot be read or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrMetadataUnavailable is returned when the current version or build cannot be determined.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	// ErrInvalidIdentifier is returned for a version or build the history encoding cannot hold.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrMalformedHistory is returned by LoadHistory for a stored value that does not decode.
	ErrMalformedHistory = errors.New("malformed history")
)

// KeyValueStore is a durable string store scoped to one installation.
type KeyValueStore interface {
	Contains(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// MetadataProvider reports the version and build of the running application.
type MetadataProvider interface {
	CurrentVersion() (string, error)
	CurrentBuild() (string, error)
}

// Service is the interface for launch tracking.
type Service interface {
	// Track classifies the current launch and persists the histories.
	// Call it once, early, before using any accessor.
	Track(ctx context.Context) error
	Tracked() bool

	IsFirstLaunchEver() bool
	IsFirstLaunchForVersion() bool
	IsFirstLaunchForBuild() bool

	CurrentVersion() string
	CurrentBuild() string
	PreviousVersion() string
	PreviousBuild() string
	FirstInstalledVersion() string
	FirstInstalledBuild() string
	VersionHistory() []string
	BuildHistory() []string

	FirstLaunchForVersion(version string) bool
	FirstLaunchForBuild(build string) bool
	OnFirstLaunchOfVersion(version string, fn func())
	OnFirstLaunchOfBuild(build string, fn func())

	Report() model.LaunchReport
	String() string
}
