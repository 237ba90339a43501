package util

import "time"

// Millisecond constants for epoch-ms arithmetic.
const (
	MsPerMinute = int64(time.Minute / time.Millisecond)
	MsPerHour   = int64(time.Hour / time.Millisecond)
	MsPerDay    = 24 * MsPerHour
)

// Hours converts a ms duration to fractional hours.
func Hours(ms int64) float64 {
	if ms <= 0 {
		return 0
	}
	return float64(ms) / float64(MsPerHour)
}

// DayStart truncates an epoch-ms instant to its UTC midnight.
func DayStart(ms int64) int64 {
	d := ms % MsPerDay
	if d < 0 {
		d += MsPerDay
	}
	return ms - d
}

// Time converts epoch ms to a UTC time.Time.
func Time(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
