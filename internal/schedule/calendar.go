// Package schedule holds the plan scheduling engine: pure calendar math,
// the week-by-week session builder, day-collision resolution, strength
// injection and the adjustment strategy rules. Nothing in this package
// touches persistence; callers batch and store what it produces.
package schedule

import (
	"time"

	"alcyxob/sportplan/internal/domain"
)

// Clock abstracts "today" so date clipping and adjustment windows stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by the wall clock (UTC).
func SystemClock() Clock { return systemClock{} }

// Midnight truncates t to UTC midnight. All scheduled dates are stored
// this way so date equality is plain time equality.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date at UTC midnight.
func Today(clock Clock) time.Time {
	return Midnight(clock.Now())
}

// WeeksIn returns how many scheduling weeks the range spans. A week is
// seven days counted from the start date, not a calendar week.
func WeeksIn(start, end time.Time) int {
	start, end = Midnight(start), Midnight(end)
	if end.Before(start) {
		return 0
	}
	totalDays := int(end.Sub(start).Hours() / 24)
	return (totalDays + 6) / 7
}

// DateFor returns the date of the given weekday within scheduling week w.
// The weekday's fixed ordinal is the day offset from the week start.
func DateFor(start time.Time, week int, day domain.DayOfWeek) time.Time {
	return Midnight(start).AddDate(0, 0, week*7+day.Ordinal())
}
