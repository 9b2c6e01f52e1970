package cache

import (
	"context"
	"time"
)

// NullCache backs the "none" cache setting: every badge is rendered on
// request and nothing is kept between requests.
type NullCache struct{}

// NewNullCache returns the cache used when caching is disabled.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get reports a miss for every badge key.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the rendered badge.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

// Delete is a no-op; there is never anything to remove.
func (*NullCache) Delete(context.Context, string) error {
	return nil
}

// Close is a no-op.
func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
