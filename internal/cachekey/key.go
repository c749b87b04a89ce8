// Package cachekey derives stable cache keys from ephemeris calculation
// inputs.
//
// Key derivation is pure and total: it never fails, and two logically
// equal inputs always produce the same key. Canonicalization rules:
//
//   - The instant is converted to UTC, expressed as a Julian Day and
//     rounded to the nearest minute, so timezone representation and
//     sub-minute noise never fragment keys.
//   - Coordinates are rounded to 4 decimal places (about 11 meters).
//   - The requested object set is lowercased, deduplicated and sorted,
//     so object-list order carries no meaning.
//
// The canonical form is hashed with SHA-256 and rendered as hex.
package cachekey

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/emmygrace/crius-swiss/internal/julian"
)

// Key is a derived cache key.
type Key string

// Input holds the raw calculation inputs a key is derived from.
type Input struct {
	Instant time.Time

	// HasLocation distinguishes "no location" from a location at the
	// origin; Lat/Lon are ignored when it is false.
	HasLocation bool
	Lat, Lon    float64

	Zodiac      string
	Ayanamsa    string
	HouseSystem string
	Objects     []string
}

// Compute derives the cache key for the given inputs.
func Compute(in Input) Key {
	jd := julian.RoundToMinute(julian.FromTime(in.Instant))

	geo := "none"
	if in.HasLocation {
		geo = fmt.Sprintf("%.4f,%.4f", roundCoord(in.Lat), roundCoord(in.Lon))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "jd:%.6f|geo:%s|zodiac:%s|ayanamsa:%s|houses:%s|objects:%s",
		jd,
		geo,
		strings.ToLower(in.Zodiac),
		strings.ToLower(in.Ayanamsa),
		strings.ToLower(in.HouseSystem),
		canonicalObjects(in.Objects),
	)

	sum := sha256.Sum256([]byte(b.String()))
	return Key(hex.EncodeToString(sum[:]))
}

// roundCoord rounds a coordinate to 4 decimal places.
func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// canonicalObjects lowercases, deduplicates and sorts the object list.
func canonicalObjects(objects []string) string {
	seen := make(map[string]struct{}, len(objects))
	out := make([]string, 0, len(objects))
	for _, obj := range objects {
		lower := strings.ToLower(obj)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}
