package schedule

import "alcyxob/sportplan/internal/domain"

// Fixed candidate weekdays for injected strength sessions, tried in this
// order each week. Deliberately narrow: no fallback to other days and no
// rebalancing around the primary sport schedule.
var strengthDays = []domain.DayOfWeek{domain.Tuesday, domain.Thursday}

// StrengthTitle is the title of every injected strength session.
const StrengthTitle = "Strength Training"

// strengthDurationMinutes is the default length of an injected strength
// session; no preference carries a duration for it.
const strengthDurationMinutes = 45

// injectStrength adds two weekly supplemental strength sessions when the
// plan asks for strength work and no preference already trains
// weightlifting. A day whose morning is taken only gets a strength
// session (at evening) when multiple sessions per day are allowed.
func injectStrength(spec domain.PlanSpecification, sessions []domain.ScheduledSession, tracker *slotTracker) []domain.ScheduledSession {
	if !spec.IncludesStrength {
		return sessions
	}
	for _, pref := range spec.SportPreferences {
		if pref.Sport == domain.SportWeightlifting {
			return sessions
		}
	}

	weeks := WeeksIn(spec.StartDate, spec.EndDate)
	end := Midnight(spec.EndDate)

	for week := 0; week < weeks; week++ {
		for _, day := range strengthDays {
			date := DateFor(spec.StartDate, week, day)
			if date.After(end) {
				continue
			}
			tod := domain.TimeMorning
			if !tracker.slotFree(date, domain.TimeMorning) {
				if !spec.MultipleSessionsPerDay {
					continue // day is spoken for, no fallback
				}
				if !tracker.slotFree(date, domain.TimeEvening) {
					continue
				}
				tod = domain.TimeEvening
			}
			sessions = append(sessions, domain.ScheduledSession{
				PlanID:          &spec.PlanID,
				UserID:          spec.UserID,
				ScheduledDate:   date,
				TimeOfDay:       tod,
				Sport:           domain.SportWeightlifting,
				WorkoutType:     domain.WorkoutStrength,
				Title:           StrengthTitle,
				DurationMinutes: strengthDurationMinutes,
				Intensity:       domain.IntensityNone,
			})
			tracker.Occupy(date, tod)
		}
	}
	return sessions
}
