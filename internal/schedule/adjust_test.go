package schedule

import (
	"testing"

	"alcyxob/sportplan/internal/domain"
)

func historyRecords(total, completed int) []domain.WorkoutRecord {
	records := make([]domain.WorkoutRecord, total)
	for i := range records {
		records[i].Completed = i < completed
	}
	return records
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		want      float64
	}{
		{"all completed", 10, 10, 1.0},
		{"high", 10, 8, 0.8},
		{"low", 10, 3, 0.3},
		{"short history is undefined", 9, 9, 0},
		{"no history", 0, 0, 0},
		{"extra records ignored", 15, 15, 1.0},
	}
	for _, tt := range tests {
		got := CompletionRate(historyRecords(tt.total, tt.completed))
		if got != tt.want {
			t.Errorf("%s: CompletionRate() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSelectStrategy(t *testing.T) {
	skipped := &domain.ScheduledSession{Skipped: true}
	completed := &domain.ScheduledSession{Completed: true}
	undone := &domain.ScheduledSession{}

	if got := SelectStrategy(skipped, 1.0); got != StrategyIntensify {
		t.Errorf("skipped session: strategy = %s, want intensify", got)
	}
	if got := SelectStrategy(completed, 0.9); got != StrategyMaintain {
		t.Errorf("completed with high rate: strategy = %s, want maintain", got)
	}
	if got := SelectStrategy(completed, 0.3); got != StrategyMaintain {
		t.Errorf("completed with low rate: strategy = %s, want maintain", got)
	}
	if got := SelectStrategy(undone, 0.3); got != StrategyMaintain {
		t.Errorf("undone session: strategy = %s, want maintain", got)
	}
}

func TestAdjustmentFor(t *testing.T) {
	if got := AdjustmentFor(StrategyIntensify); got != domain.IntensityIntensified {
		t.Errorf("intensify -> %s", got)
	}
	if got := AdjustmentFor(StrategyReduce); got != domain.IntensityLight {
		t.Errorf("reduce -> %s", got)
	}
	if got := AdjustmentFor(StrategyMaintain); got != domain.IntensityNone {
		t.Errorf("maintain -> %s", got)
	}
}

func TestMakeupSession(t *testing.T) {
	changed := &domain.ScheduledSession{
		Sport:           "running",
		WorkoutType:     domain.WorkoutTraining,
		DurationMinutes: 60,
	}
	makeupDate := MakeupDate(date(2024, 1, 8))
	if !makeupDate.Equal(date(2024, 1, 7)) {
		t.Fatalf("MakeupDate() = %v, want 2024-01-07", makeupDate)
	}

	makeup := MakeupSession(changed, makeupDate)
	if makeup.TimeOfDay != domain.TimeAfternoon {
		t.Errorf("makeup timeOfDay = %s, want afternoon", makeup.TimeOfDay)
	}
	if makeup.Title != "Running Makeup Session" {
		t.Errorf("makeup title = %q", makeup.Title)
	}
	if makeup.Sport != "running" || makeup.WorkoutType != domain.WorkoutTraining {
		t.Errorf("makeup does not mirror the changed session")
	}
	if makeup.Completed || makeup.Skipped || makeup.ContentRef != nil {
		t.Error("makeup not in initial state")
	}
}
