// Package domain provides core business rules for the interviews bounded context.
package domain

import "strings"

// Bucket is the two-valued life-cycle classification driving tabs and dashboards.
type Bucket string

const (
	// BucketOpen marks an interview still in flight.
	BucketOpen Bucket = "open"
	// BucketComplete marks an interview that reached a terminal outcome.
	BucketComplete Bucket = "complete"
)

// StatusSeparator joins a main status and its sub-status into one token.
const StatusSeparator = ":"

// ParseStatus splits a status token into its main and sub parts.
// A bare token yields (token, "").
func ParseStatus(token string) (main, sub string) {
	main, sub, found := strings.Cut(token, StatusSeparator)
	if !found {
		return strings.TrimSpace(token), ""
	}
	return strings.TrimSpace(main), strings.TrimSpace(sub)
}

// FormatStatus joins a main status and sub-status into a composite token.
// An empty sub yields the bare main token.
func FormatStatus(main, sub string) string {
	if sub == "" {
		return main
	}
	return main + StatusSeparator + sub
}
