// Package criusswissfx provides an fx module wiring a cached ephemeris
// adapter into an application graph.
// Requires a criusswiss.Provider and a *zap.Logger to be provided.
package criusswissfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	criusswiss "github.com/emmygrace/crius-swiss"
	"github.com/emmygrace/crius-swiss/internal/stats"
	"github.com/emmygrace/crius-swiss/internal/stats/logger"
)

// Module provides a *criusswiss.CachedAdapter built from the graph's
// Provider and logger.
var Module = fx.Module("criusswiss",
	fx.Provide(
		newStatsCollector,
		newAdapter,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("criusswiss.stats"))
}

// Params holds dependencies for creating the adapter.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Provider  criusswiss.Provider
}

// Result holds the provided adapter.
type Result struct {
	fx.Out

	Adapter *criusswiss.CachedAdapter
}

func newAdapter(p Params) (Result, error) {
	adapter, err := criusswiss.New(p.Provider,
		criusswiss.WithStats(p.Collector),
		criusswiss.WithLogger(p.Logger.Named("criusswiss")),
	)
	if err != nil {
		return Result{}, err
	}

	return Result{Adapter: adapter}, nil
}
