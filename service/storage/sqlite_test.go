package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/version-tracker/service/tracker"
)

type staticMeta struct{ version, build string }

func (m staticMeta) CurrentVersion() (string, error) { return m.version, nil }
func (m staticMeta) CurrentBuild() (string, error)   { return m.build, nil }

func newTestSQLite(t *testing.T, dbPath, scope string, clock clockwork.Clock) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(dbPath, scope, clock)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreContract(t *testing.T) {
	runStoreContract(t, newTestSQLite(t, filepath.Join(t.TempDir(), "settings.db"), "", nil))
}

func TestSQLiteStoreScopesAreIsolated(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	a := newTestSQLite(t, dbPath, "app-a", nil)
	ctx := context.Background()
	require.NoError(t, a.Set(ctx, "xamVersion", "1.0"))

	b := newTestSQLite(t, dbPath, "app-b", nil)
	ok, err := b.Contains(ctx, "xamVersion")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreUpdatedAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "settings.db"), "", clock)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "xamBuild", "100"))
	clock.Advance(48 * time.Hour)
	require.NoError(t, store.Set(ctx, "xamBuild", "100,110"))

	ts, ok, err := store.UpdatedAt(ctx, "xamBuild")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, start.Add(48*time.Hour).Equal(ts), "unexpected updated_at %v", ts)

	_, ok, err = store.UpdatedAt(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStoreVacuum(t *testing.T) {
	store := newTestSQLite(t, filepath.Join(t.TempDir(), "settings.db"), "", nil)
	require.NoError(t, store.Vacuum(context.Background()))
}

func TestResolvePathDefault(t *testing.T) {
	p, err := resolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "settings.db", filepath.Base(p))
	assert.Equal(t, ".version-tracker", filepath.Base(filepath.Dir(p)))
}

// Each launch opens the database fresh, the way a restarted process would.
func TestSQLiteHistorySurvivesRestarts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	ctx := context.Background()

	launch := func(version, build string) tracker.Service {
		store, err := NewSQLiteStore(dbPath, "", nil)
		require.NoError(t, err)
		defer store.Close()

		svc := tracker.NewService(store, staticMeta{version: version, build: build})
		require.NoError(t, svc.Track(ctx))
		return svc
	}

	first := launch("1.0.0.0", "100")
	assert.True(t, first.IsFirstLaunchEver())

	again := launch("1.0.0.0", "100")
	assert.False(t, again.IsFirstLaunchEver())
	assert.False(t, again.IsFirstLaunchForVersion())

	upgraded := launch("1.1.0.0", "110")
	assert.True(t, upgraded.IsFirstLaunchForVersion())
	assert.Equal(t, []string{"1.0.0.0", "1.1.0.0"}, upgraded.VersionHistory())
	assert.Equal(t, "1.0.0.0", upgraded.PreviousVersion())
	assert.Equal(t, "100", upgraded.FirstInstalledBuild())
}

func TestSQLiteClosedStoreSurfacesStorageUnavailable(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "settings.db"), "", nil)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	svc := tracker.NewService(store, staticMeta{version: "1.0", build: "1"})
	err = svc.Track(context.Background())
	require.ErrorIs(t, err, tracker.ErrStorageUnavailable)
	assert.Empty(t, svc.VersionHistory())
}
