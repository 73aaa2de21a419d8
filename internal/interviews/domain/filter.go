package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tab selects the coarse life-cycle slice of the collection.
type Tab string

const (
	TabAll      Tab = "all"
	TabToday    Tab = "today"
	TabUpcoming Tab = "upcoming"
	TabResult   Tab = "result"
)

// ParseTab maps a query value to a Tab, defaulting to all.
func ParseTab(value string) Tab {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabToday:
		return TabToday
	case TabUpcoming:
		return TabUpcoming
	case TabResult:
		return TabResult
	default:
		return TabAll
	}
}

// Facets are independent filter dimensions applied after the tab slice.
// Every facet is optional; set facets are AND-combined.
type Facets struct {
	// Statuses matches by exact token equality: a composite facet value only
	// matches the identical composite status, a bare value only the identical
	// bare status. No partial hierarchy matching.
	Statuses []string
	// DateFrom/DateTo bound the interview date, inclusive.
	DateFrom *time.Time
	DateTo   *time.Time
	// CreatedBy matches a single creator.
	CreatedBy *uuid.UUID
	// Types matches when any value is a case-insensitive substring of the
	// interview type.
	Types []string
	// JobOpenings matches when any value is a case-insensitive substring of
	// the job opening.
	JobOpenings []string
	// Search matches case-insensitively as a substring of candidate name,
	// either phone number, job opening, or city.
	Search string
}

// FilterInterviews derives the visible slice for a tab plus facets. It is a
// pure function over the given records, classifier, and clock; concurrent
// calls over the same snapshot are safe.
func FilterInterviews(records []Interview, tab Tab, f Facets, classifier *Classifier, now time.Time) []Interview {
	out := make([]Interview, 0, len(records))
	for _, rec := range records {
		if !matchesTab(rec, tab, classifier, now) {
			continue
		}
		if !matchesFacets(rec, f) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesTab(rec Interview, tab Tab, classifier *Classifier, now time.Time) bool {
	switch tab {
	case TabToday:
		return classifier.Classify(rec.Status) == BucketOpen && sameDay(rec.InterviewDate, now)
	case TabUpcoming:
		return classifier.Classify(rec.Status) == BucketOpen && laterDay(rec.InterviewDate, now)
	case TabResult:
		return classifier.Classify(rec.Status) == BucketComplete
	default:
		return true
	}
}

func matchesFacets(rec Interview, f Facets) bool {
	if len(f.Statuses) > 0 && !containsExact(f.Statuses, rec.Status) {
		return false
	}
	if f.DateFrom != nil && rec.InterviewDate.Before(startOfDay(*f.DateFrom)) {
		return false
	}
	if f.DateTo != nil && rec.InterviewDate.After(endOfDay(*f.DateTo)) {
		return false
	}
	if f.CreatedBy != nil && rec.CreatedBy != *f.CreatedBy {
		return false
	}
	if len(f.Types) > 0 && !containsSubstring(f.Types, rec.InterviewType) {
		return false
	}
	if len(f.JobOpenings) > 0 && !containsSubstring(f.JobOpenings, rec.JobOpening) {
		return false
	}
	if f.Search != "" && !matchesSearch(rec, f.Search) {
		return false
	}
	return true
}

func matchesSearch(rec Interview, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{
		rec.CandidateName,
		rec.MobileNumber,
		rec.AlternateNumber,
		rec.JobOpening,
		rec.City,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func containsExact(values []string, status string) bool {
	for _, v := range values {
		if v == status {
			return true
		}
	}
	return false
}

func containsSubstring(values []string, field string) bool {
	lowered := strings.ToLower(field)
	for _, v := range values {
		if v == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// dateOf collapses a timestamp to its calendar date, read in its own
// location. Tab comparisons are date-only on both sides: records carry
// UTC-midnight dates while the clock may be zoned, and comparing instants
// would let a record dated today also count as upcoming.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}

func laterDay(a, b time.Time) bool {
	return dateOf(a).After(dateOf(b))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
