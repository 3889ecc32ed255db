package booking

import (
	"time"

	"homestay-api/internal/pkg/clock"
)

type Availability struct {
	Available bool
	// Current is the first interval (list order) covering the day, nil when available.
	Current *Interval
}

// HasConflict decides whether candidate may be added to existing.
//
// An exact duplicate (same dates and guest name) is rejected explicitly even
// though equal ranges are always caught by the overlap test too.
func HasConflict(existing []Interval, candidate Interval) bool {
	for _, iv := range existing {
		if iv.CheckIn == candidate.CheckIn &&
			iv.CheckOut == candidate.CheckOut &&
			iv.Guest.Name == candidate.Guest.Name {
			return true
		}
		if iv.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// ClassifyAvailability reports whether the room is free on asOf (YYYY-MM-DD).
func ClassifyAvailability(intervals []Interval, asOf string) Availability {
	for i := range intervals {
		if intervals[i].Contains(asOf) {
			current := intervals[i]
			return Availability{Available: false, Current: &current}
		}
	}
	return Availability{Available: true}
}

// Today formats the clock's current server-local date.
func Today(c clock.Clock) string {
	return FormatDate(c.Now())
}

func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}
