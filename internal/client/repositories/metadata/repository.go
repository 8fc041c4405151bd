// Package metadata persists opaque key/value blobs in the local SQLite
// database. Values are stored as given; sealing is the caller's job.
package metadata

import "context"

type Repository interface {
	// Get returns (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, key string) (bool, error)
}
