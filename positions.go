package criusswiss

import "math"

// GeoLocation is a geographic position in decimal degrees.
// North latitudes and east longitudes are positive.
type GeoLocation struct {
	Lat float64
	Lon float64
}

// PlanetPosition is the computed position of a single object.
type PlanetPosition struct {
	// Lon is the ecliptic longitude in degrees, in [0, 360).
	Lon float64

	// Lat is the ecliptic latitude in degrees.
	Lat float64

	// SpeedLon is the longitudinal speed in degrees per day.
	// Negative values indicate retrograde motion.
	SpeedLon float64

	// Retrograde is true when SpeedLon is negative.
	Retrograde bool
}

// HouseAngles holds the four chart angles in degrees.
type HouseAngles struct {
	Asc float64
	MC  float64
	IC  float64
	DC  float64
}

// HousePositions holds house cusps and angles for one chart.
type HousePositions struct {
	// System is the house system the cusps were computed with.
	System HouseSystem

	// Cusps maps house number (1-12) to cusp longitude in degrees.
	Cusps map[int]float64

	// Angles holds the Ascendant, Midheaven and their opposites.
	Angles HouseAngles
}

// Positions is the result of one calculation: planetary positions plus,
// when a location was given, house positions.
type Positions struct {
	Planets map[Object]PlanetPosition
	Houses  *HousePositions
}

// Sign is a zodiac sign name.
type Sign string

// The twelve zodiac signs in order, 30 degrees each from 0 Aries.
var signs = [12]Sign{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

// SignFor returns the zodiac sign containing the given ecliptic
// longitude. The longitude is normalized into [0, 360) first.
func SignFor(lon float64) Sign {
	normalized := math.Mod(lon, 360)
	if normalized < 0 {
		normalized += 360
	}
	idx := int(normalized / 30)
	if idx > 11 {
		idx = 11
	}
	return signs[idx]
}

// Sign returns the zodiac sign the position falls in.
func (p PlanetPosition) Sign() Sign {
	return SignFor(p.Lon)
}
