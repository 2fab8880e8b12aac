// Package repository holds one collection store per entity type. Each store
// owns the authoritative in-memory list, seeds it on first run, and rewrites
// the whole persisted blob after every successful mutation. No operation
// returns an error to the caller — persistence failures are logged and the
// in-memory list stays the source of truth.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gestor/internal/storage"

	"github.com/rs/zerolog/log"
)

// loadBlob reads and decodes the collection stored under key. A missing blob
// means first run; an unreadable or unparseable one is recovered silently.
// Either way the caller gets a usable list — load failure never blocks
// entity availability.
func loadBlob[T any](ctx context.Context, st storage.Store, key string, seed []T) []T {
	raw, err := st.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Warn().Err(err).Str("collection", key).Msg("persistence read failed, seeding")
		}
		return append([]T(nil), seed...)
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Str("collection", key).Msg("stored blob unparseable, seeding")
		return append([]T(nil), seed...)
	}
	return items
}

// saveBlob rewrites the entire collection — no diffing. An empty collection
// is never persisted: during the startup load race an empty list must not
// clobber previously saved data, so callers tolerate the skip.
func saveBlob[T any](ctx context.Context, st storage.Store, key string, items []T) {
	if len(items) == 0 {
		return
	}
	raw, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("collection", key).Msg("collection marshal failed")
		return
	}
	if err := st.Set(ctx, key, string(raw)); err != nil {
		log.Error().Err(err).Str("collection", key).Msg("persistence write failed")
	}
}
