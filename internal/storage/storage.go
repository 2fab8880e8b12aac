// Package storage is the key-value persistence boundary for collection
// blobs. Each entity collection is saved and loaded as a single raw-text
// blob under a fixed key — no transactions, no partial writes. The concrete
// backend (file, redis, memory) is injected, so repositories are testable
// without any real environment behind them.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound signals that no blob exists under the requested key. Callers
// treat it as "first run" and fall back to seed data.
var ErrNotFound = errors.New("storage: key not found")

// Store reads and writes whole-collection blobs.
type Store interface {
	// Get returns the raw text stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set overwrites the blob stored under key.
	Set(ctx context.Context, key, value string) error
	// Ping validates that the backend is reachable/usable.
	Ping(ctx context.Context) error
}
