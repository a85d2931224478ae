// Package cache provides result caching for the checker.
//
// External search tools tend to re-submit identical problems across
// sessions, and a full trial sequence can be expensive; the cache
// memoizes the boolean answer keyed by a hash of the problem text.
// Backends:
//   - FileCache: directory-backed, for CLI usage
//   - RedisCache: shared backend for server deployments
//   - NullCache: disables caching
//
// Keys are produced by a Keyer so that different deployments can
// namespace their entries (see ScopedKeyer).
package cache

import (
	"context"
	"time"
)

// TTLs for cached data.
const (
	// TTLResult is how long a memoized answer stays valid. Answers are
	// pure functions of the problem text, so the TTL only bounds cache
	// growth.
	TTLResult = 30 * 24 * time.Hour
)

// Cache is the interface for caching backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
