package domain

import "testing"

func TestDisplayTitle(t *testing.T) {
	s := ScheduledSession{Title: "Running training"}

	if got := s.DisplayTitle(); got != "Running training" {
		t.Errorf("no adjustment: %q", got)
	}

	s.Intensity = IntensityIntensified
	want := "Running training (Intensified)"
	if got := s.DisplayTitle(); got != want {
		t.Errorf("intensified: %q, want %q", got, want)
	}
	// Deriving again never doubles the suffix.
	if got := s.DisplayTitle(); got != want {
		t.Errorf("intensified twice: %q, want %q", got, want)
	}

	s.Intensity = IntensityLight
	if got := s.DisplayTitle(); got != "Running training (Light)" {
		t.Errorf("light: %q", got)
	}
}

func TestIsPending(t *testing.T) {
	s := ScheduledSession{}
	if !s.IsPending() {
		t.Error("fresh session should be pending")
	}
	s.Completed = true
	if s.IsPending() {
		t.Error("completed session should not be pending")
	}
	s = ScheduledSession{Skipped: true}
	if s.IsPending() {
		t.Error("skipped session should not be pending")
	}
}
