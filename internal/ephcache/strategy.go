package ephcache

import "github.com/emmygrace/crius-swiss/internal/cachekey"

// Strategy defines the eviction strategy backing a Cache.
// Implementations must be safe for concurrent use.
type Strategy[V any] interface {
	// Get retrieves a value and marks it recently used.
	Get(key cachekey.Key) (V, bool)

	// Add inserts or overwrites a value, evicting per the strategy's
	// policy when at capacity. Returns true if an eviction occurred.
	Add(key cachekey.Key, value V) bool

	// Len returns the number of stored entries.
	Len() int

	// Purge removes all entries.
	Purge()
}
