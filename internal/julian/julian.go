// Package julian converts civil time to Julian Day numbers as used by
// the Swiss Ephemeris (Gregorian calendar).
package julian

import (
	"math"
	"time"
)

// minutesPerDay is the granularity used by RoundToMinute.
const minutesPerDay = 1440

// FromTime returns the Julian Day for the given time. The time is
// converted to UTC before conversion, so two representations of the same
// physical instant always yield the same Julian Day.
func FromTime(t time.Time) float64 {
	u := t.UTC()

	year := u.Year()
	month := int(u.Month())
	day := u.Day()

	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045

	dayFrac := (float64(u.Hour())-12)/24 +
		float64(u.Minute())/minutesPerDay +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/86400

	return float64(jdn) + dayFrac
}

// RoundToMinute rounds a Julian Day to the nearest minute.
func RoundToMinute(jd float64) float64 {
	return math.Round(jd*minutesPerDay) / minutesPerDay
}
