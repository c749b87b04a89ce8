package ephcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/emmygrace/crius-swiss/internal/cachekey"
)

// Compile-time check that LRU implements Strategy.
var _ Strategy[int] = (*LRU[int])(nil)

// LRU implements least-recently-used eviction, backed by
// hashicorp/golang-lru.
type LRU[V any] struct {
	cache *lru.Cache[cachekey.Key, V]
}

// NewLRU creates an LRU strategy with the given capacity.
func NewLRU[V any](capacity int) (*LRU[V], error) {
	c, err := lru.New[cachekey.Key, V](capacity)
	if err != nil {
		return nil, err
	}
	return &LRU[V]{cache: c}, nil
}

// Get retrieves a value by key, marking it most recently used.
func (l *LRU[V]) Get(key cachekey.Key) (V, bool) {
	return l.cache.Get(key)
}

// Add stores a value, evicting the least recently used entry when at
// capacity.
func (l *LRU[V]) Add(key cachekey.Key, value V) bool {
	return l.cache.Add(key, value)
}

// Len returns the number of items in the cache.
func (l *LRU[V]) Len() int {
	return l.cache.Len()
}

// Purge removes all items.
func (l *LRU[V]) Purge() {
	l.cache.Purge()
}
