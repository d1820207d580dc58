package domain

import "fmt"

// DayOfWeek names a weekday with a fixed ordinal, independent of any
// runtime's own weekday numbering. The ordinal is the day offset from the
// start of a scheduling week (Sunday = 0 .. Saturday = 6).
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// dayOrdinals is the single source of truth for weekday offsets.
var dayOrdinals = map[DayOfWeek]int{
	Sunday:    0,
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

// CanonicalWeekdays is the fixed order used when a preference needs more
// scheduling days than it lists (Monday first, weekend last).
var CanonicalWeekdays = []DayOfWeek{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}

// Ordinal returns the day's offset within a scheduling week.
func (d DayOfWeek) Ordinal() int {
	return dayOrdinals[d]
}

// Valid reports whether d names one of the seven weekdays.
func (d DayOfWeek) Valid() bool {
	_, ok := dayOrdinals[d]
	return ok
}

// ParseDayOfWeek converts a lowercase weekday name into a DayOfWeek.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown day of week %q", s)
	}
	return d, nil
}
