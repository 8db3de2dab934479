package utils

import "time"

// Rows store unix seconds; responses render UTC at second precision.

func NowUnixSeconds() int64 { return time.Now().Unix() }

// FormatUnix renders an epoch-seconds value as 2006-01-02T15:04:05Z.
// Returns "" for zero or negative values so callers can omit the field.
func FormatUnix(ts int64) string {
	if ts <= 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02T15:04:05Z")
}
