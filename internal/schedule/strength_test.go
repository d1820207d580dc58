package schedule

import (
	"testing"

	"alcyxob/sportplan/internal/domain"
)

func strengthSessions(sessions []domain.ScheduledSession) []domain.ScheduledSession {
	var out []domain.ScheduledSession
	for _, s := range sessions {
		if s.Sport == domain.SportWeightlifting {
			out = append(out, s)
		}
	}
	return out
}

func TestStrengthInjectionOnFreeDays(t *testing.T) {
	spec := testSpec(date(2024, 1, 1), date(2024, 1, 14),
		runningPref(3, domain.Monday, domain.Wednesday, domain.Friday))
	spec.IncludesStrength = true

	sessions := Build(spec)
	strength := strengthSessions(sessions)

	// Tuesday and thursday are free of running, so two per week.
	if len(strength) != 4 {
		t.Fatalf("got %d strength sessions, want 4", len(strength))
	}
	for _, s := range strength {
		if s.TimeOfDay != domain.TimeMorning {
			t.Errorf("strength on %v at %s, want morning", s.ScheduledDate, s.TimeOfDay)
		}
		if s.WorkoutType != domain.WorkoutStrength {
			t.Errorf("strength on %v has type %s", s.ScheduledDate, s.WorkoutType)
		}
		if s.Title != StrengthTitle {
			t.Errorf("strength title = %q, want %q", s.Title, StrengthTitle)
		}
	}
	wantDates := []int{3, 5, 10, 12} // tuesday/thursday offsets in both weeks
	for i, s := range strength {
		if s.ScheduledDate.Day() != wantDates[i] {
			t.Errorf("strength %d on day %d, want %d", i, s.ScheduledDate.Day(), wantDates[i])
		}
	}
}

func TestStrengthSkipsOccupiedDaysWithoutMultiple(t *testing.T) {
	// Running trains on the strength candidate days themselves.
	spec := testSpec(date(2024, 1, 1), date(2024, 1, 7),
		runningPref(2, domain.Tuesday, domain.Thursday))
	spec.IncludesStrength = true

	sessions := Build(spec)

	if got := len(strengthSessions(sessions)); got != 0 {
		t.Fatalf("got %d strength sessions, want 0 (no fallback days)", got)
	}
}

func TestStrengthUsesEveningWithMultiple(t *testing.T) {
	spec := testSpec(date(2024, 1, 1), date(2024, 1, 7),
		runningPref(2, domain.Tuesday, domain.Thursday))
	spec.IncludesStrength = true
	spec.MultipleSessionsPerDay = true

	sessions := Build(spec)
	strength := strengthSessions(sessions)

	if len(strength) != 2 {
		t.Fatalf("got %d strength sessions, want 2", len(strength))
	}
	for _, s := range strength {
		if s.TimeOfDay != domain.TimeEvening {
			t.Errorf("strength on %v at %s, want evening", s.ScheduledDate, s.TimeOfDay)
		}
	}
}

func TestStrengthNotInjectedWhenWeightliftingPreferred(t *testing.T) {
	lifting := domain.SportPreference{
		Sport:                  domain.SportWeightlifting,
		FrequencyPerWeek:       2,
		PreferredDays:          []domain.DayOfWeek{domain.Monday, domain.Friday},
		SessionDurationMinutes: 45,
	}
	spec := testSpec(date(2024, 1, 1), date(2024, 1, 7), lifting)
	spec.IncludesStrength = true

	sessions := Build(spec)

	// Only the preference's own sessions; nothing injected on top.
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
}

func TestStrengthNotInjectedWhenDisabled(t *testing.T) {
	spec := testSpec(date(2024, 1, 1), date(2024, 1, 14),
		runningPref(3, domain.Monday, domain.Wednesday, domain.Friday))

	if got := len(strengthSessions(Build(spec))); got != 0 {
		t.Fatalf("got %d strength sessions, want 0", got)
	}
}
