package models

import (
	"fmt"
	"time"
)

// naiveISOLayout matches Python's datetime.isoformat() without a zone;
// fractional seconds are accepted when present.
const naiveISOLayout = "2006-01-02T15:04:05"

// ParseTime reads a backend timestamp: RFC 3339, the RFC 1123 form Flask's
// jsonify writes for datetimes, or zone-less ISO 8601 read as UTC.
// An empty string is the zero time.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(time.RFC1123, s); err == nil {
		return ts.UTC(), nil
	}
	if ts, err := time.ParseInLocation(naiveISOLayout, s, time.UTC); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
