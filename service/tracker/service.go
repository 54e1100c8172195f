// Package tracker records first launches and the version/build history of an application.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/thirukguru/version-tracker/model"
)

type service struct {
	store KeyValueStore
	meta  MetadataProvider
	log   *slog.Logger

	// mu serializes Track and guards everything below it.
	mu                      sync.RWMutex
	tracked                 bool
	versions                []string
	builds                  []string
	isFirstLaunchEver       bool
	isFirstLaunchForVersion bool
	isFirstLaunchForBuild   bool
}

// Option configures the tracker.
type Option func(*service)

// WithLogger sets the logger used for classification and history warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService creates a tracker over the given store and metadata provider.
func NewService(store KeyValueStore, meta MetadataProvider, opts ...Option) Service {
	s := &service{
		store: store,
		meta:  meta,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Track(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hasVersions, err := s.store.Contains(ctx, VersionsKey)
	if err != nil {
		return fmt.Errorf("%w: check %s: %w", ErrStorageUnavailable, VersionsKey, err)
	}
	hasBuilds, err := s.store.Contains(ctx, BuildsKey)
	if err != nil {
		return fmt.Errorf("%w: check %s: %w", ErrStorageUnavailable, BuildsKey, err)
	}

	firstEver := !hasVersions && !hasBuilds
	dirty := firstEver
	versions, builds := []string{}, []string{}
	if !firstEver {
		var repaired bool
		if versions, repaired, err = s.loadHistory(ctx, VersionsKey, hasVersions); err != nil {
			return err
		}
		dirty = dirty || repaired
		if builds, repaired, err = s.loadHistory(ctx, BuildsKey, hasBuilds); err != nil {
			return err
		}
		dirty = dirty || repaired
	}

	version, err := s.meta.CurrentVersion()
	if err != nil {
		return fmt.Errorf("%w: current version: %w", ErrMetadataUnavailable, err)
	}
	build, err := s.meta.CurrentBuild()
	if err != nil {
		return fmt.Errorf("%w: current build: %w", ErrMetadataUnavailable, err)
	}
	if version == "" || build == "" {
		return fmt.Errorf("%w: empty version %q or build %q", ErrMetadataUnavailable, version, build)
	}
	if err := validIdentifier(version); err != nil {
		return err
	}
	if err := validIdentifier(build); err != nil {
		return err
	}

	firstForVersion := !slices.Contains(versions, version)
	if firstForVersion {
		versions = append(versions, version)
		dirty = true
	}
	firstForBuild := !slices.Contains(builds, build)
	if firstForBuild {
		builds = append(builds, build)
		dirty = true
	}

	if dirty {
		if err := s.store.Set(ctx, VersionsKey, EncodeHistory(versions)); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, VersionsKey, err)
		}
		if err := s.store.Set(ctx, BuildsKey, EncodeHistory(builds)); err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, BuildsKey, err)
		}
	}

	s.versions = versions
	s.builds = builds
	s.isFirstLaunchEver = firstEver
	s.isFirstLaunchForVersion = firstForVersion
	s.isFirstLaunchForBuild = firstForBuild
	s.tracked = true

	s.log.Debug("launch tracked",
		"version", version,
		"build", build,
		"first_ever", firstEver,
		"first_for_version", firstForVersion,
		"first_for_build", firstForBuild,
		"persisted", dirty,
	)

	return nil
}

// loadHistory reads one history. A value that had to be repaired is reported
// so Track rewrites it; an unreadable value is logged and treated as empty.
func (s *service) loadHistory(ctx context.Context, key string, exists bool) ([]string, bool, error) {
	if !exists {
		return []string{}, false, nil
	}

	history, raw, err := readHistory(ctx, s.store, key)
	if errors.Is(err, ErrMalformedHistory) {
		s.log.Warn("discarding malformed history", "key", key, "error", err)
		return []string{}, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	repaired := EncodeHistory(history) != raw
	if repaired {
		s.log.Warn("repaired stored history", "key", key, "stored", raw, "history", history)
	}
	return history, repaired, nil
}

// LoadHistory reads and decodes the history stored under key without tracking
// anything. A missing key is an empty history.
func LoadHistory(ctx context.Context, store KeyValueStore, key string) ([]string, error) {
	history, _, err := readHistory(ctx, store, key)
	return history, err
}

func readHistory(ctx context.Context, store KeyValueStore, key string) ([]string, string, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, key, err)
	}
	if !ok {
		return []string{}, "", nil
	}

	history, err := DecodeHistory(raw)
	if err != nil {
		return nil, raw, fmt.Errorf("%w: %s: %w", ErrMalformedHistory, key, err)
	}
	return history, raw, nil
}

func (s *service) Tracked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracked
}

func (s *service) IsFirstLaunchEver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFirstLaunchEver
}

func (s *service) IsFirstLaunchForVersion() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFirstLaunchForVersion
}

func (s *service) IsFirstLaunchForBuild() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFirstLaunchForBuild
}

// CurrentVersion asks the provider every time; failures read as "".
func (s *service) CurrentVersion() string {
	v, err := s.meta.CurrentVersion()
	if err != nil {
		return ""
	}
	return v
}

func (s *service) CurrentBuild() string {
	b, err := s.meta.CurrentBuild()
	if err != nil {
		return ""
	}
	return b
}

func (s *service) PreviousVersion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return previous(s.versions)
}

func (s *service) PreviousBuild() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return previous(s.builds)
}

func (s *service) FirstInstalledVersion() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.versions)
}

func (s *service) FirstInstalledBuild() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return first(s.builds)
}

func (s *service) VersionHistory() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.versions...)
}

func (s *service) BuildHistory() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.builds...)
}

func (s *service) FirstLaunchForVersion(version string) bool {
	return strings.EqualFold(s.CurrentVersion(), version) && s.IsFirstLaunchForVersion()
}

func (s *service) FirstLaunchForBuild(build string) bool {
	return strings.EqualFold(s.CurrentBuild(), build) && s.IsFirstLaunchForBuild()
}

func (s *service) OnFirstLaunchOfVersion(version string, fn func()) {
	if fn != nil && s.FirstLaunchForVersion(version) {
		fn()
	}
}

func (s *service) OnFirstLaunchOfBuild(build string, fn func()) {
	if fn != nil && s.FirstLaunchForBuild(build) {
		fn()
	}
}

func (s *service) Report() model.LaunchReport {
	version, build := s.CurrentVersion(), s.CurrentBuild()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return model.LaunchReport{
		IsFirstLaunchEver:       s.isFirstLaunchEver,
		IsFirstLaunchForVersion: s.isFirstLaunchForVersion,
		IsFirstLaunchForBuild:   s.isFirstLaunchForBuild,
		CurrentVersion:          version,
		PreviousVersion:         previous(s.versions),
		FirstInstalledVersion:   first(s.versions),
		VersionHistory:          append([]string{}, s.versions...),
		CurrentBuild:            build,
		PreviousBuild:           previous(s.builds),
		FirstInstalledBuild:     first(s.builds),
		BuildHistory:            append([]string{}, s.builds...),
	}
}

// String renders every tracked field for diagnostics.
func (s *service) String() string {
	return FormatReport(s.Report())
}

// FormatReport renders a report as an aligned plain-text block.
func FormatReport(r model.LaunchReport) string {
	var sb strings.Builder
	row := func(name string, value any) {
		fmt.Fprintf(&sb, "  %-25s%v\n", name, value)
	}
	list := func(items []string) string {
		return "[ " + strings.Join(items, ", ") + " ]"
	}

	sb.WriteString("\nVersionTracking\n")
	row("IsFirstLaunchEver", r.IsFirstLaunchEver)
	row("IsFirstLaunchForVersion", r.IsFirstLaunchForVersion)
	row("IsFirstLaunchForBuild", r.IsFirstLaunchForBuild)
	row("CurrentVersion", r.CurrentVersion)
	row("PreviousVersion", r.PreviousVersion)
	row("FirstInstalledVersion", r.FirstInstalledVersion)
	row("VersionHistory", list(r.VersionHistory))
	row("CurrentBuild", r.CurrentBuild)
	row("PreviousBuild", r.PreviousBuild)
	row("FirstInstalledBuild", r.FirstInstalledBuild)
	row("BuildHistory", list(r.BuildHistory))
	return sb.String()
}
