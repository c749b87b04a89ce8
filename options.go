package criusswiss

import (
	"go.uber.org/zap"

	"github.com/emmygrace/crius-swiss/internal/stats"
)

// DefaultCacheSize is the cache capacity used when WithCacheSize is not
// given.
const DefaultCacheSize = 256

// Option configures a CachedAdapter.
type Option interface {
	apply(*options)
}

// options holds the adapter configuration.
type options struct {
	cacheSize int
	stats     stats.Collector
	logger    *zap.Logger
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		cacheSize: DefaultCacheSize,
		stats:     stats.NewNoop(),
		logger:    zap.NewNop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithCacheSize sets the maximum number of cached results.
// Default is DefaultCacheSize. Values <= 0 cause New to fail.
func WithCacheSize(n int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = n
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}
