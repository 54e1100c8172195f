package metadata

type overrideService struct {
	base    Service
	version string
	build   string
}

// WithOverrides returns a provider that reports version and build when set and
// falls back to base otherwise. Used to track another application's releases.
func WithOverrides(base Service, version, build string) Service {
	if version == "" && build == "" {
		return base
	}
	return &overrideService{base: base, version: normalizeVersion(version), build: build}
}

func (s *overrideService) CurrentVersion() (string, error) {
	if s.version != "" {
		return s.version, nil
	}
	if s.base == nil {
		return "", ErrNoVersion
	}
	return s.base.CurrentVersion()
}

func (s *overrideService) CurrentBuild() (string, error) {
	if s.build != "" {
		return s.build, nil
	}
	if s.base == nil {
		return "", ErrNoBuild
	}
	return s.base.CurrentBuild()
}
