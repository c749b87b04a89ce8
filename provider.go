package criusswiss

import (
	"context"
	"fmt"
	"time"
)

// Provider computes celestial positions for a given instant and place.
//
// Implementations are expected to be deterministic for fixed inputs; the
// cache layer relies on this and would otherwise silently serve stale
// results. Implementations are NOT expected to be safe for concurrent
// use: Swiss Ephemeris bindings hold shared sidereal-mode state, and
// CachedAdapter serializes all calls into a provider accordingly.
type Provider interface {
	// CalcPositions returns planetary positions for every recognized
	// object in settings.IncludeObjects and, when location is non-nil,
	// house cusps and angles for the requested house system.
	CalcPositions(ctx context.Context, instant time.Time, location *GeoLocation, settings Settings) (*Positions, error)
}

// CalculationError reports a failed ephemeris calculation, carrying the
// object and instant that failed when known.
type CalculationError struct {
	Object  Object
	Instant time.Time
	Msg     string
}

func (e *CalculationError) Error() string {
	msg := "criusswiss: calculation failed"
	if e.Msg != "" {
		msg = "criusswiss: " + e.Msg
	}
	if e.Object != "" {
		msg += fmt.Sprintf(" (object: %s)", e.Object)
	}
	if !e.Instant.IsZero() {
		msg += fmt.Sprintf(" (instant: %s)", e.Instant.Format(time.RFC3339))
	}
	return msg
}
