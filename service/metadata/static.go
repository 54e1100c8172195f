package metadata

import (
	"strings"

	"github.com/thirukguru/version-tracker/model"
)

type staticService struct {
	version string
	build   string
}

// NewStaticService reports fixed values, typically injected with -ldflags.
// The commit doubles as the build identifier.
func NewStaticService(info model.VersionInfo) Service {
	return &staticService{
		version: normalizeVersion(info.Version),
		build:   strings.TrimSpace(info.Commit),
	}
}

func (s *staticService) CurrentVersion() (string, error) {
	if s.version == "" {
		return "", ErrNoVersion
	}
	return s.version, nil
}

func (s *staticService) CurrentBuild() (string, error) {
	if s.build == "" {
		return "", ErrNoBuild
	}
	return s.build, nil
}

// normalizeVersion strips the "v" prefix if present.
func normalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
