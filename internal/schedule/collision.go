package schedule

import (
	"time"

	"alcyxob/sportplan/internal/domain"
)

// slotTracker is the collision resolver's view of the batch being built.
// Multiple sport preferences are scheduled in one generation pass, so the
// resolver must see sessions placed earlier in the same pass, not only
// what is already persisted.
type slotTracker struct {
	taken map[string]map[domain.TimeOfDay]bool // date key -> occupied slots
}

func newSlotTracker() *slotTracker {
	return &slotTracker{taken: make(map[string]map[domain.TimeOfDay]bool)}
}

func dateKey(t time.Time) string {
	return Midnight(t).Format("2006-01-02")
}

// Resolve picks the time-of-day slot for a candidate date, or reports
// that no slot is available:
//   - an empty day gets morning;
//   - with multiple sessions per day allowed, a day whose evening is
//     still free gets evening;
//   - otherwise the date is full.
func (st *slotTracker) Resolve(date time.Time, multiplePerDay bool) (domain.TimeOfDay, bool) {
	slots := st.taken[dateKey(date)]
	if len(slots) == 0 {
		return domain.TimeMorning, true
	}
	if multiplePerDay && !slots[domain.TimeEvening] {
		return domain.TimeEvening, true
	}
	return "", false
}

// Occupy records that a slot has been claimed.
func (st *slotTracker) Occupy(date time.Time, tod domain.TimeOfDay) {
	key := dateKey(date)
	if st.taken[key] == nil {
		st.taken[key] = make(map[domain.TimeOfDay]bool)
	}
	st.taken[key][tod] = true
}

// slotFree reports whether the given slot is still unclaimed.
func (st *slotTracker) slotFree(date time.Time, tod domain.TimeOfDay) bool {
	return !st.taken[dateKey(date)][tod]
}
