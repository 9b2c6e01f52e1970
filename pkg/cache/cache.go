// Package cache stores rendered badges.
//
// Three backends implement [Cache]:
//
//   - [NullCache] never stores anything (caching disabled).
//   - [FileCache] keeps JSON entries under a directory, for a single host.
//   - [RedisCache] shares entries between server instances.
//
// Keys come from [BadgeKey], which hashes everything that affects the
// rendered bytes.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry. Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns the stored data and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
