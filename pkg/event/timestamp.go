package event

import (
	"time"
)

// Layout is the ISO-8601 form used on disk: UTC with milliseconds, the same
// shape a browser's Date.toISOString produces.
const Layout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in the storage layout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(Layout)
}

// ParseTime parses any RFC 3339 timestamp and returns it in local time.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}
