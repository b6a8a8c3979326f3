package utils

import (
	"fmt"
	"time"
)

func GetMinTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

func ParseDateOnly(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseDateOnly: failed to parse %s: %w", value, err)
	}

	return t, nil
}

// DayBounds expands two calendar dates to a full-day window in floating epoch
// seconds: midnight on the start date through the last microsecond of the end
// date.
func DayBounds(start time.Time, end time.Time) (float64, float64) {
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999000, time.UTC)

	return EpochSeconds(dayStart), EpochSeconds(dayEnd)
}

// EpochSeconds converts a time to floating seconds since the epoch, keeping
// sub-second precision.
func EpochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}
