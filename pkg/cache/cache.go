// Package cache provides the result cache used by the encryption pipeline.
//
// Encryption is deterministic, so a ciphertext computed once can be served
// again for any input that normalizes to the same text. Three backends are
// available:
//   - [NullCache]: caching disabled
//   - [FileCache]: JSON files under a local directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP API
//
// Keys are built by a [Keyer] so that callers never hand-format them.
package cache

import (
	"context"
	"time"
)

// TTLCipher is the default lifetime of a cached ciphertext.
const TTLCipher = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
