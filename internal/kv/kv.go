// Package kv is the persistence primitive of the service: a flat key-value
// mapping whose only query mechanism is an exact-key lookup or a key-prefix
// scan. Every logical collection (products, campaigns) lives under its own
// key prefix; the repositories own those prefixes.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a missing key. An empty prefix scan is
// a valid empty result, not an error.
var ErrNotFound = errors.New("key not found")

type Store interface {
	// Set upserts; last write wins. Values are stored as JSON documents.
	Set(ctx context.Context, key string, value any) error
	// Get unmarshals the stored document into dest, or returns ErrNotFound.
	Get(ctx context.Context, key string, dest any) error
	// GetByPrefix returns the raw documents of every key starting with
	// prefix, in no guaranteed order. Callers needing order sort themselves.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	// Delete removes an entry; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
