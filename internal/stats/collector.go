// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Adapter metrics.
	MetricCalcs           = "crius_calc_positions_total"
	MetricProviderCalls   = "crius_provider_calls_total"
	MetricProviderSeconds = "crius_provider_seconds"

	// Cache metrics.
	MetricCacheHits   = "crius_cache_hits_total"
	MetricCacheMisses = "crius_cache_misses_total"
	MetricCacheSize   = "crius_cache_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
