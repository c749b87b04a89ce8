package julian

import (
	"math"
	"testing"
	"time"
)

func TestFromTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{
			"J2000 epoch",
			time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			2451545.0,
		},
		{
			"2024 new year noon",
			time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			2460311.0,
		},
		{
			"2024 new year midnight",
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			2460310.5,
		},
		{
			"half hour past noon",
			time.Date(2000, 1, 1, 12, 30, 0, 0, time.UTC),
			2451545.0 + 30.0/1440,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTime(tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FromTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromTime_TimezoneNormalized(t *testing.T) {
	// Same physical instant expressed in two timezones.
	utc := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)
	offset := utc.In(time.FixedZone("UTC+5:30", 5*3600+1800))

	if FromTime(utc) != FromTime(offset) {
		t.Errorf("FromTime differs across timezone representations: %v vs %v",
			FromTime(utc), FromTime(offset))
	}
}

func TestRoundToMinute(t *testing.T) {
	base := FromTime(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	withSeconds := FromTime(time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC))

	if RoundToMinute(base) != RoundToMinute(withSeconds) {
		t.Error("instants within the same minute should round to the same value")
	}

	nextMinute := FromTime(time.Date(2024, 1, 1, 12, 1, 0, 0, time.UTC))
	if RoundToMinute(base) == RoundToMinute(nextMinute) {
		t.Error("instants a minute apart should round to different values")
	}
}
