// Package ephcache provides a bounded, hit/miss-tracked memoization
// store for ephemeris calculation results.
package ephcache

import (
	"errors"
	"sync/atomic"

	"github.com/emmygrace/crius-swiss/internal/cachekey"
	"github.com/emmygrace/crius-swiss/internal/stats"
)

// ErrInvalidMaxSize indicates a non-positive cache capacity.
var ErrInvalidMaxSize = errors.New("ephcache: maxsize must be a positive integer")

// Cache is a bounded LRU store keyed by cachekey.Key. Values are opaque:
// the cache never inspects or mutates them.
//
// A Cache is safe for concurrent use by multiple goroutines.
type Cache[V any] struct {
	strategy  Strategy[V]
	maxsize   int
	collector stats.Collector

	hits   atomic.Int64
	misses atomic.Int64
}

// Stats is a snapshot of cache statistics. Hit and miss counters are
// lifetime totals; they survive Clear.
type Stats struct {
	Hits    int64
	Misses  int64
	Size    int
	MaxSize int
}

// HitRate returns the fraction of requests served from cache, in [0, 1].
// Returns 0 when no requests have been made yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// New creates a Cache holding at most maxsize entries with LRU eviction.
// The collector is optional; if nil, a no-op collector is used.
// Returns ErrInvalidMaxSize when maxsize is not positive.
func New[V any](maxsize int, collector stats.Collector) (*Cache[V], error) {
	if maxsize <= 0 {
		return nil, ErrInvalidMaxSize
	}
	strategy, err := NewLRU[V](maxsize)
	if err != nil {
		return nil, err
	}
	return NewWithStrategy[V](strategy, maxsize, collector), nil
}

// NewWithStrategy creates a Cache with an injected eviction strategy.
// Intended for tests; New is the normal constructor.
func NewWithStrategy[V any](strategy Strategy[V], maxsize int, collector stats.Collector) *Cache[V] {
	if collector == nil {
		collector = stats.NewNoop()
	}
	return &Cache[V]{
		strategy:  strategy,
		maxsize:   maxsize,
		collector: collector,
	}
}

// Get retrieves a cached value. A hit marks the entry most recently used
// and counts toward the hit counter; a miss counts toward the miss
// counter and changes nothing else. Get never fails.
func (c *Cache[V]) Get(key cachekey.Key) (V, bool) {
	val, ok := c.strategy.Get(key)
	if ok {
		c.hits.Add(1)
		c.collector.IncCounter(stats.MetricCacheHits, 1)
		return val, true
	}
	c.misses.Add(1)
	c.collector.IncCounter(stats.MetricCacheMisses, 1)
	return val, false
}

// Put inserts or overwrites the entry for key. When the cache is full
// and key is new, the least recently used entry is evicted first.
func (c *Cache[V]) Put(key cachekey.Key, value V) {
	c.strategy.Add(key, value)
	c.collector.SetGauge(stats.MetricCacheSize, int64(c.strategy.Len()))
}

// Stats returns a snapshot of the cache's statistics.
func (c *Cache[V]) Stats() Stats {
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Size:    c.strategy.Len(),
		MaxSize: c.maxsize,
	}
}

// Clear removes all entries. Hit and miss counters are lifetime usage
// statistics and are deliberately not reset.
func (c *Cache[V]) Clear() {
	c.strategy.Purge()
	c.collector.SetGauge(stats.MetricCacheSize, 0)
}
