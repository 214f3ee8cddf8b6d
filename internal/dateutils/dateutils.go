// Package dateutils provides the date and time conversions used when
// re-emitting statement timestamps in the target schema.
package dateutils

import (
	"strings"
	"time"
)

// Common layout constants used throughout the application
const (
	DateLayoutISO    = "2006-01-02"
	DateTimeLayout   = "2006-01-02T15:04:05"
	OffsetTimeLayout = "2006-01-02T15:04:05-07:00"

	// FallbackOffset is appended when a timestamp parses as a bare UTC
	// datetime without any offset information.
	FallbackOffset = "+02:00"
)

// utcLayouts are tried when a timestamp carries no offset at all.
var utcLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ToOffsetDateTime reformats a timestamp string to seconds precision with
// an explicit numeric offset (YYYY-MM-DDTHH:MM:SS±HH:MM), dropping any
// fractional seconds.
//
// Inputs like "2025-06-22T17:33:43.291656435Z" or
// "2025-06-20T00:00:00+02:00" keep their offset. Timestamps without an
// offset are read as UTC wall time and rendered with FallbackOffset.
// Anything unparseable is returned unchanged; this function never fails.
func ToOffsetDateTime(value string) string {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.Format(OffsetTimeLayout)
	}

	cleaned := strings.TrimSpace(value)
	for _, layout := range utcLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			// Same wall time, fixed fallback offset. The clock fields are
			// not shifted.
			return t.Format(DateTimeLayout) + FallbackOffset
		}
	}

	return value
}

// ToDateOnly returns the date portion (YYYY-MM-DD) of a timestamp string
// by taking its first ten characters. Strings shorter than ten characters
// are returned unchanged. This assumes ISO date-first ordering; it is not
// a semantic date parse.
func ToDateOnly(value string) string {
	if len(value) >= 10 {
		return value[:10]
	}
	return value
}
