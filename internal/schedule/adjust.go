package schedule

import (
	"time"

	"alcyxob/sportplan/internal/domain"
)

// Strategy is the adjustment engine's chosen response to a session
// status change.
type Strategy string

const (
	StrategyIntensify Strategy = "intensify"
	StrategyMaintain  Strategy = "maintain"
	StrategyReduce    Strategy = "reduce"
)

const (
	// HistoryWindow is how many recent workout records feed the
	// completion-rate heuristic.
	HistoryWindow = 10
	// AdjustWindow is how many upcoming sessions a single adjustment
	// run may touch.
	AdjustWindow = 3
	// highCompletionRate is the threshold above which a completed
	// session leaves the plan as-is.
	highCompletionRate = 0.8
)

// CompletionRate computes the fraction of the last HistoryWindow records
// marked completed. With fewer than HistoryWindow records the rate is
// undefined and reported as zero, which never counts as high.
func CompletionRate(records []domain.WorkoutRecord) float64 {
	if len(records) < HistoryWindow {
		return 0
	}
	completed := 0
	for _, r := range records[:HistoryWindow] {
		if r.Completed {
			completed++
		}
	}
	return float64(completed) / float64(HistoryWindow)
}

// SelectStrategy decides how upcoming sessions react to a status change:
// a skip intensifies, a completion with a high completion rate maintains,
// and everything else falls back to maintain. StrategyReduce exists for
// the light adjustment but no current rule selects it.
func SelectStrategy(changed *domain.ScheduledSession, completionRate float64) Strategy {
	if changed.Skipped {
		return StrategyIntensify
	}
	if changed.Completed && completionRate >= highCompletionRate {
		return StrategyMaintain
	}
	return StrategyMaintain
}

// AdjustmentFor maps a strategy onto the intensity written to affected
// sessions. Maintain maps to no change.
func AdjustmentFor(s Strategy) domain.IntensityAdjustment {
	switch s {
	case StrategyIntensify:
		return domain.IntensityIntensified
	case StrategyReduce:
		return domain.IntensityLight
	default:
		return domain.IntensityNone
	}
}

// MakeupDate is where a replacement session goes after a skip: one day
// before the earliest still-open session of the same sport.
func MakeupDate(earliest time.Time) time.Time {
	return Midnight(earliest).AddDate(0, 0, -1)
}

// MakeupSession builds the single replacement session for a skip. The
// caller is responsible for the date checks (not in the past, day still
// free) before persisting it.
func MakeupSession(changed *domain.ScheduledSession, date time.Time) domain.ScheduledSession {
	return domain.ScheduledSession{
		PlanID:          changed.PlanID,
		UserID:          changed.UserID,
		ScheduledDate:   Midnight(date),
		TimeOfDay:       domain.TimeAfternoon,
		Sport:           changed.Sport,
		WorkoutType:     changed.WorkoutType,
		Title:           capitalize(changed.Sport) + " Makeup Session",
		DurationMinutes: changed.DurationMinutes,
		Intensity:       domain.IntensityNone,
	}
}
