package utils

import "time"

// FormatUnix renders a unix-seconds timestamp as RFC 3339 UTC, the format
// API responses use for created_at/updated_at.
func FormatUnix(sec int64) string {
	if sec == 0 {
		return ""
	}
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
