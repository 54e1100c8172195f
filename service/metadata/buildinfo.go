package metadata

import (
	"fmt"
	"runtime/debug"
)

const shortRevisionLen = 12

// readBuildInfo is a variable to allow mocking in tests.
var readBuildInfo = debug.ReadBuildInfo

type buildInfoService struct {
	version string
	build   string
}

// NewBuildInfoService reads the main module version and VCS revision embedded
// by the Go toolchain.
func NewBuildInfoService() (Service, error) {
	info, ok := readBuildInfo()
	if !ok {
		return nil, fmt.Errorf("build info not available")
	}

	s := &buildInfoService{}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		s.version = normalizeVersion(v)
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			s.build = setting.Value
			if len(s.build) > shortRevisionLen {
				s.build = s.build[:shortRevisionLen]
			}
		}
	}

	return s, nil
}

func (s *buildInfoService) CurrentVersion() (string, error) {
	if s.version == "" {
		return "", ErrNoVersion
	}
	return s.version, nil
}

func (s *buildInfoService) CurrentBuild() (string, error) {
	if s.build == "" {
		return "", ErrNoBuild
	}
	return s.build, nil
}
