package storage

import "testing"

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStore("not-a-url", ""); err == nil {
		t.Fatalf("expected error for invalid redis URL")
	}
}

func TestNewRedisStorePrefix(t *testing.T) {
	store, err := NewRedisStore("redis://localhost:6379/0", "")
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	defer store.Close()

	if store.prefix != "version-tracker:default:" {
		t.Fatalf("unexpected prefix: %q", store.prefix)
	}
}
