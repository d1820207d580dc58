package service

import (
	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/logger"
	"alcyxob/sportplan/internal/repository"
	"alcyxob/sportplan/internal/schedule"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPlanValidation       = errors.New("plan validation failed")
	ErrPlanAlreadyGenerated = errors.New("sessions were already generated for this plan")
	ErrPlanPersistence      = errors.New("failed to store generated schedule")
)

const (
	minFrequencyPerWeek = 1
	maxFrequencyPerWeek = 14
)

// GenerationResult reports what a plan generation produced.
type GenerationResult struct {
	ScheduledCount int
	Message        string
}

// PlanService turns plan specifications into persisted schedules and
// serves calendar reads.
type PlanService interface {
	GeneratePlan(ctx context.Context, spec domain.PlanSpecification) (*GenerationResult, error)
	GetSessions(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ScheduledSession, error)
}

// planService implements the PlanService interface.
type planService struct {
	sessionRepo repository.SessionRepository
	clock       schedule.Clock
	log         *logger.Logger
}

// NewPlanService creates a new instance of planService.
func NewPlanService(sessionRepo repository.SessionRepository, clock schedule.Clock, log *logger.Logger) PlanService {
	return &planService{
		sessionRepo: sessionRepo,
		clock:       clock,
		log:         log,
	}
}

// GeneratePlan validates the specification, builds the full session list
// in memory and stores it with a single bulk insert. Nothing is written
// when validation fails. Re-generating a plan is rejected before any
// write happens.
func (s *planService) GeneratePlan(ctx context.Context, spec domain.PlanSpecification) (*GenerationResult, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}

	// Guard against duplicate schedules from repeated generation calls;
	// the unique session index backs this up under races.
	exists, err := s.sessionRepo.ExistsForPlan(ctx, spec.PlanID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPlanAlreadyGenerated
	}

	runID := uuid.NewString()
	log := s.log.With("run", runID, "plan", spec.PlanID.Hex(), "user", spec.UserID.Hex())

	sessions := schedule.Build(spec)
	log.Info("schedule built",
		"weeks", schedule.WeeksIn(spec.StartDate, spec.EndDate),
		"sessions", len(sessions))

	count, err := s.sessionRepo.CreateBatch(ctx, sessions)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPlanAlreadyGenerated
		}
		log.Error("bulk insert failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPlanPersistence, err)
	}

	return &GenerationResult{
		ScheduledCount: count,
		Message:        fmt.Sprintf("Generated %d scheduled sessions", count),
	}, nil
}

// GetSessions returns the caller's sessions in a date range.
func (s *planService) GetSessions(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ScheduledSession, error) {
	if userID == primitive.NilObjectID {
		return nil, fmt.Errorf("%w: user ID is required", ErrPlanValidation)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", ErrPlanValidation)
	}
	return s.sessionRepo.GetByUserAndRange(ctx, userID, schedule.Midnight(from), schedule.Midnight(to))
}

func validateSpec(spec domain.PlanSpecification) error {
	switch {
	case spec.PlanID == primitive.NilObjectID:
		return fmt.Errorf("%w: plan ID is required", ErrPlanValidation)
	case spec.UserID == primitive.NilObjectID:
		return fmt.Errorf("%w: user ID is required", ErrPlanValidation)
	case spec.StartDate.IsZero() || spec.EndDate.IsZero():
		return fmt.Errorf("%w: start and end dates are required", ErrPlanValidation)
	case spec.EndDate.Before(spec.StartDate):
		return fmt.Errorf("%w: end date before start date", ErrPlanValidation)
	case len(spec.SportPreferences) == 0:
		return fmt.Errorf("%w: at least one sport preference is required", ErrPlanValidation)
	}
	for _, pref := range spec.SportPreferences {
		if pref.Sport == "" {
			return fmt.Errorf("%w: sport name is required", ErrPlanValidation)
		}
		if pref.FrequencyPerWeek < minFrequencyPerWeek || pref.FrequencyPerWeek > maxFrequencyPerWeek {
			return fmt.Errorf("%w: frequency for %s must be between %d and %d per week",
				ErrPlanValidation, pref.Sport, minFrequencyPerWeek, maxFrequencyPerWeek)
		}
		if pref.SessionDurationMinutes <= 0 {
			return fmt.Errorf("%w: session duration for %s must be positive", ErrPlanValidation, pref.Sport)
		}
		seen := make(map[domain.DayOfWeek]bool, len(pref.PreferredDays))
		for _, day := range pref.PreferredDays {
			if !day.Valid() {
				return fmt.Errorf("%w: unknown preferred day %q for %s", ErrPlanValidation, day, pref.Sport)
			}
			if seen[day] {
				return fmt.Errorf("%w: duplicate preferred day %q for %s", ErrPlanValidation, day, pref.Sport)
			}
			seen[day] = true
		}
	}
	return nil
}
