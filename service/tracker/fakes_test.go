package tracker

import (
	"context"
	"errors"
	"sync"
)

type fakeStore struct {
	mu      sync.Mutex
	values  map[string]string
	writes  int
	readErr error
	setErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Contains(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return false, f.readErr
	}
	_, ok := f.values[key]
	return ok, nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return "", false, f.readErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.writes++
	return nil
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

type fakeMeta struct {
	version string
	build   string
	err     error
}

func (m *fakeMeta) CurrentVersion() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.version, nil
}

func (m *fakeMeta) CurrentBuild() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.build, nil
}

var errDiskFull = errors.New("disk full")
