package services

import (
	"strings"
	"time"
)

// Layouts accepted for announcement timestamps. datetime-local inputs send
// minute precision without an offset.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseUTCTimestamp parses an ISO-8601 timestamp string. An empty value is
// an error only when the field is required. A timestamp without an offset is
// assumed to be UTC; the result is always normalized to UTC.
func parseUTCTimestamp(value, field string, required bool) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return nil, &ValidationError{Detail: field + " is required"}
		}
		return nil, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			utc := parsed.UTC()
			return &utc, nil
		}
	}

	return nil, &ValidationError{Detail: "Invalid " + field + " format"}
}
