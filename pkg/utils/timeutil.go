package utils

import (
	"strings"
	"time"
)

// Epoch is the zero reference for article timestamps. Articles whose
// published time cannot be parsed sort behind everything else.
var Epoch = time.Unix(0, 0).UTC()

// newsTimeLayouts are the timestamp shapes news providers actually emit,
// tried in order.
var newsTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseNewsTime parses an ISO-8601 timestamp from a news feed.
// A trailing literal "Z" parses as UTC (RFC 3339). Empty or malformed
// input returns Epoch rather than an error so one bad record never
// stops a run.
func ParseNewsTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return Epoch
	}

	for _, layout := range newsTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return Epoch
}

// FormatRunDate renders a time as the YYYY-MM-DD run-date string used in
// report filenames and stub timestamps.
func FormatRunDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseRunDate parses a YYYY-MM-DD run date. An empty value means today.
func ParseRunDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
