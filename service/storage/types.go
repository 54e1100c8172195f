package storage

import (
	"context"
	"errors"
)

// DefaultScope is used when no installation scope is configured.
const DefaultScope = "default"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// Service defines a durable key-value store scoped to one installation.
type Service interface {
	Contains(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

func scopeOrDefault(scope string) string {
	if scope == "" {
		return DefaultScope
	}
	return scope
}
