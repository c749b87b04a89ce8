// Package criusswiss provides a caching adapter for Swiss Ephemeris
// position calculations.
//
// The package wraps any Provider (typically a binding to the Swiss
// Ephemeris native library) with a bounded LRU cache keyed on the
// calculation inputs, so repeated charts for the same instant, place and
// settings are served from memory instead of recomputed.
//
// Example usage:
//
//	adapter, err := criusswiss.New(provider,
//	    criusswiss.WithCacheSize(512),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	positions, err := adapter.CalcPositions(ctx, instant, &loc, settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("sun at %.4f\n", positions.Planets[criusswiss.ObjectSun].Lon)
package criusswiss

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/emmygrace/crius-swiss/internal/cachekey"
	"github.com/emmygrace/crius-swiss/internal/ephcache"
	"github.com/emmygrace/crius-swiss/internal/stats"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrNoProvider indicates no provider was given to New.
	ErrNoProvider = errors.New("criusswiss: no provider given")

	// ErrDataFilesNotFound indicates the Swiss Ephemeris data files
	// (.se1) could not be located. Returned by providers, never by the
	// cache layer itself.
	ErrDataFilesNotFound = errors.New("criusswiss: ephemeris data files not found")
)

// CachedAdapter wraps a Provider with an LRU result cache.
//
// A CachedAdapter is safe for concurrent use by multiple goroutines. The
// wrapped provider is not assumed to be: Swiss Ephemeris bindings keep
// process-wide sidereal-mode state that is mutated per call, so all
// provider invocations are serialized behind a single mutex.
type CachedAdapter struct {
	provider Provider
	cache    *ephcache.Cache[*Positions]
	stats    stats.Collector
	logger   *zap.Logger

	// mu serializes the check-call-store sequence on a cache miss so at
	// most one provider call is in flight per adapter instance.
	mu sync.Mutex
}

// New creates a CachedAdapter around the given provider.
// If no options are provided, sensible defaults are used (cache of
// DefaultCacheSize entries, no-op stats and logging).
func New(provider Provider, opts ...Option) (*CachedAdapter, error) {
	if provider == nil {
		return nil, ErrNoProvider
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	cache, err := ephcache.New[*Positions](cfg.cacheSize, cfg.stats)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	a := &CachedAdapter{
		provider: provider,
		cache:    cache,
		stats:    cfg.stats,
		logger:   cfg.logger,
	}

	a.logger.Debug("cached adapter initialized",
		zap.Int("cacheSize", cfg.cacheSize),
	)

	return a, nil
}

// CalcPositions computes planetary and house positions for the given
// instant, location and settings, consulting the cache first.
//
// On a hit the cached result is returned unchanged and the provider is
// not invoked. On a miss the provider is called exactly once; its result
// is stored and returned, and any provider error is propagated unchanged
// without caching anything for the key.
//
// location may be nil, in which case providers skip house calculation.
func (a *CachedAdapter) CalcPositions(ctx context.Context, instant time.Time, location *GeoLocation, settings Settings) (*Positions, error) {
	a.stats.IncCounter(stats.MetricCalcs, 1)

	key := a.cacheKey(instant, location, settings)

	a.mu.Lock()
	defer a.mu.Unlock()

	if pos, ok := a.cache.Get(key); ok {
		return pos, nil
	}

	a.stats.IncCounter(stats.MetricProviderCalls, 1)
	start := time.Now()
	pos, err := a.provider.CalcPositions(ctx, instant, location, settings)
	a.stats.ObserveHistogram(stats.MetricProviderSeconds, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}

	a.cache.Put(key, pos)

	a.logger.Debug("positions computed",
		zap.Time("instant", instant),
		zap.Duration("elapsed", time.Since(start)),
	)

	return pos, nil
}

// CacheStats returns the cache's current hit/miss statistics.
func (a *CachedAdapter) CacheStats() ephcache.Stats {
	return a.cache.Stats()
}

// ClearCache drops all cached entries. Hit/miss counters are lifetime
// statistics and persist across a clear.
func (a *CachedAdapter) ClearCache() {
	a.cache.Clear()
}

// cacheKey derives the canonical cache key for a calculation request.
func (a *CachedAdapter) cacheKey(instant time.Time, location *GeoLocation, settings Settings) cachekey.Key {
	in := cachekey.Input{
		Instant:     instant,
		Zodiac:      string(settings.ZodiacType),
		Ayanamsa:    string(settings.Ayanamsa),
		HouseSystem: string(settings.HouseSystem),
		Objects:     make([]string, 0, len(settings.IncludeObjects)),
	}
	if location != nil {
		in.HasLocation = true
		in.Lat = location.Lat
		in.Lon = location.Lon
	}
	for _, obj := range settings.IncludeObjects {
		in.Objects = append(in.Objects, string(obj))
	}
	return cachekey.Compute(in)
}
