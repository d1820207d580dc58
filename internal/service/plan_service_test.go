package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/logger"
	"alcyxob/sportplan/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validPlanSpec() domain.PlanSpecification {
	return domain.PlanSpecification{
		PlanID:    primitive.NewObjectID(),
		UserID:    primitive.NewObjectID(),
		StartDate: day(1),
		EndDate:   day(28),
		SportPreferences: []domain.SportPreference{
			{
				Sport:                  "running",
				FrequencyPerWeek:       3,
				PreferredDays:          []domain.DayOfWeek{domain.Tuesday, domain.Thursday, domain.Saturday},
				SessionDurationMinutes: 60,
			},
		},
	}
}

func newPlanFixture() (*fakeSessionRepo, PlanService) {
	sessions := newFakeSessionRepo()
	svc := NewPlanService(sessions, fixedClock{now: day(1)}, logger.Nop())
	return sessions, svc
}

func TestGeneratePlanPersistsSchedule(t *testing.T) {
	sessions, svc := newPlanFixture()
	spec := validPlanSpec()

	result, err := svc.GeneratePlan(context.Background(), spec)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	// Four full weeks at three sessions a week.
	if result.ScheduledCount != 12 {
		t.Errorf("ScheduledCount = %d, want 12", result.ScheduledCount)
	}
	if len(sessions.sessions) != 12 {
		t.Errorf("persisted sessions = %d, want 12", len(sessions.sessions))
	}
	for _, s := range sessions.sessions {
		if s.PlanID == nil || *s.PlanID != spec.PlanID {
			t.Fatal("persisted session missing plan reference")
		}
		if s.UserID != spec.UserID {
			t.Fatal("persisted session has wrong user")
		}
	}
}

func TestGeneratePlanRejectsRegeneration(t *testing.T) {
	sessions, svc := newPlanFixture()
	spec := validPlanSpec()

	if _, err := svc.GeneratePlan(context.Background(), spec); err != nil {
		t.Fatalf("first generation: %v", err)
	}
	before := len(sessions.sessions)

	if _, err := svc.GeneratePlan(context.Background(), spec); !errors.Is(err, ErrPlanAlreadyGenerated) {
		t.Fatalf("err = %v, want ErrPlanAlreadyGenerated", err)
	}
	if len(sessions.sessions) != before {
		t.Errorf("regeneration wrote %d new sessions", len(sessions.sessions)-before)
	}
}

func TestGeneratePlanMapsDuplicateInsert(t *testing.T) {
	sessions, svc := newPlanFixture()
	sessions.batchErr = repository.ErrDuplicate

	if _, err := svc.GeneratePlan(context.Background(), validPlanSpec()); !errors.Is(err, ErrPlanAlreadyGenerated) {
		t.Fatalf("err = %v, want ErrPlanAlreadyGenerated", err)
	}
}

func TestGeneratePlanValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PlanSpecification)
	}{
		{"missing plan ID", func(s *domain.PlanSpecification) { s.PlanID = primitive.NilObjectID }},
		{"missing user ID", func(s *domain.PlanSpecification) { s.UserID = primitive.NilObjectID }},
		{"zero start date", func(s *domain.PlanSpecification) { s.StartDate = time.Time{} }},
		{"end before start", func(s *domain.PlanSpecification) { s.EndDate = s.StartDate.AddDate(0, 0, -1) }},
		{"no preferences", func(s *domain.PlanSpecification) { s.SportPreferences = nil }},
		{"empty sport name", func(s *domain.PlanSpecification) { s.SportPreferences[0].Sport = "" }},
		{"zero frequency", func(s *domain.PlanSpecification) { s.SportPreferences[0].FrequencyPerWeek = 0 }},
		{"excessive frequency", func(s *domain.PlanSpecification) { s.SportPreferences[0].FrequencyPerWeek = 15 }},
		{"zero duration", func(s *domain.PlanSpecification) { s.SportPreferences[0].SessionDurationMinutes = 0 }},
		{"unknown day", func(s *domain.PlanSpecification) {
			s.SportPreferences[0].PreferredDays = []domain.DayOfWeek{"Someday"}
		}},
		{"duplicate day", func(s *domain.PlanSpecification) {
			s.SportPreferences[0].PreferredDays = []domain.DayOfWeek{domain.Tuesday, domain.Tuesday}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, svc := newPlanFixture()
			spec := validPlanSpec()
			tt.mutate(&spec)

			if _, err := svc.GeneratePlan(context.Background(), spec); !errors.Is(err, ErrPlanValidation) {
				t.Fatalf("err = %v, want ErrPlanValidation", err)
			}
			if len(sessions.sessions) != 0 {
				t.Errorf("invalid spec wrote %d sessions", len(sessions.sessions))
			}
		})
	}
}

func TestGetSessionsRange(t *testing.T) {
	sessions, svc := newPlanFixture()
	userID := primitive.NewObjectID()

	for _, d := range []int{1, 5, 9} {
		sessions.add(pendingSession(userID, "running", day(d)))
	}
	sessions.add(pendingSession(primitive.NewObjectID(), "running", day(5)))

	got, err := svc.GetSessions(context.Background(), userID, day(2), day(9))
	if err != nil {
		t.Fatalf("GetSessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("sessions = %d, want 2", len(got))
	}
	if !got[0].ScheduledDate.Equal(day(5)) || !got[1].ScheduledDate.Equal(day(9)) {
		t.Errorf("dates = %v, %v", got[0].ScheduledDate, got[1].ScheduledDate)
	}
}

func TestGetSessionsRejectsInvertedRange(t *testing.T) {
	_, svc := newPlanFixture()

	if _, err := svc.GetSessions(context.Background(), primitive.NewObjectID(), day(9), day(2)); !errors.Is(err, ErrPlanValidation) {
		t.Fatalf("err = %v, want ErrPlanValidation", err)
	}
}
