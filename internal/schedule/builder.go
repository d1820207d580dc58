package schedule

import (
	"strings"

	"alcyxob/sportplan/internal/domain"
)

// Every fourth week of a sport preference is biased towards cardio. This
// cadence is fixed, not configurable.
const cardioWeekInterval = 4

// Build turns a plan specification into the full ordered list of sessions
// across the plan's date range, one preference at a time, one week at a
// time. It is side-effect-free; the caller persists the batch.
func Build(spec domain.PlanSpecification) []domain.ScheduledSession {
	sessions := make([]domain.ScheduledSession, 0)
	tracker := newSlotTracker()
	weeks := WeeksIn(spec.StartDate, spec.EndDate)
	end := Midnight(spec.EndDate)

	for week := 0; week < weeks; week++ {
		for _, pref := range spec.SportPreferences {
			sessionsThisWeek := pref.FrequencyPerWeek
			if sessionsThisWeek > 7 {
				sessionsThisWeek = 7
			}
			days := scheduleDays(pref.PreferredDays, sessionsThisWeek)

			for i := 0; i < sessionsThisWeek && i < len(days); i++ {
				date := DateFor(spec.StartDate, week, days[i])
				if date.After(end) {
					continue
				}
				tod, ok := tracker.Resolve(date, spec.MultipleSessionsPerDay)
				if !ok {
					continue // date is full, drop this occurrence
				}
				workoutType := workoutTypeFor(pref.Sport, week)
				sessions = append(sessions, domain.ScheduledSession{
					PlanID:          &spec.PlanID,
					UserID:          spec.UserID,
					ScheduledDate:   date,
					TimeOfDay:       tod,
					Sport:           pref.Sport,
					WorkoutType:     workoutType,
					Title:           capitalize(pref.Sport) + " " + string(workoutType),
					DurationMinutes: pref.SessionDurationMinutes,
					Intensity:       domain.IntensityNone,
				})
				tracker.Occupy(date, tod)
			}
		}
	}

	return injectStrength(spec, sessions, tracker)
}

// scheduleDays returns the weekdays to use for one week of a preference:
// the preferred days in their configured order, then borrowed weekdays in
// canonical order until the count suffices or all seven are in use.
func scheduleDays(preferred []domain.DayOfWeek, want int) []domain.DayOfWeek {
	days := make([]domain.DayOfWeek, len(preferred))
	copy(days, preferred)
	if want <= len(days) {
		return days
	}
	present := make(map[domain.DayOfWeek]bool, len(days))
	for _, d := range days {
		present[d] = true
	}
	for _, d := range domain.CanonicalWeekdays {
		if len(days) >= want {
			break
		}
		if !present[d] {
			days = append(days, d)
			present[d] = true
		}
	}
	return days
}

func workoutTypeFor(sport string, week int) domain.WorkoutType {
	switch {
	case sport == domain.SportWeightlifting:
		return domain.WorkoutStrength
	case week%cardioWeekInterval == cardioWeekInterval-1:
		return domain.WorkoutCardio
	default:
		return domain.WorkoutTraining
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
