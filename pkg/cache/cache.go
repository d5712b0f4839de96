// Package cache provides caching for scenario traces.
//
// # Backends
//
//   - [FileCache]: entries stored as JSON files, used by the CLI
//   - [RedisCache]: shared cache for CI runners and multi-machine setups
//   - [NullCache]: caching disabled
//
// # Keys
//
// Keys are produced by a [Keyer] so that every backend agrees on the format.
// [DefaultKeyer] hashes the scenario content together with the options that
// change the outcome of a run; [ScopedKeyer] adds a namespace prefix.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.TraceKey(cache.Hash(scenarioTOML), cache.TraceKeyOpts{Version: buildinfo.Version})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"strings"
	"time"
)

// TraceTTL is how long recorded traces stay cached.
const TraceTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value stored under key. A miss is reported with
	// hit=false and a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// keyType returns the namespace of a key (the part before the first colon)
// for use in metrics.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}
