package service

import (
	"alcyxob/sportplan/internal/ai"
	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/logger"
	"alcyxob/sportplan/internal/repository"
	"alcyxob/sportplan/internal/schedule"
	"context"
	"time"

	"github.com/google/uuid"
)

// previousSessionContext is how many recent history entries are handed
// to the generator for progression context.
const previousSessionContext = 3

// ContentService fills scheduled sessions with generated workout
// content. It wraps the external text-generation collaborator; the
// scheduling engine itself never calls it.
type ContentService interface {
	// GenerateForDate sweeps all open, content-less sessions on a date
	// and generates content for each. One session's failure is logged
	// and skipped; it never aborts the sibling sessions. Returns how
	// many sessions received content.
	GenerateForDate(ctx context.Context, date time.Time) (int, error)
	// GenerateToday is GenerateForDate for the injected clock's today.
	GenerateToday(ctx context.Context) (int, error)
}

// contentService implements the ContentService interface.
type contentService struct {
	sessionRepo repository.SessionRepository
	historyRepo repository.WorkoutHistoryRepository
	contentRepo repository.WorkoutContentRepository
	generator   ai.Generator
	clock       schedule.Clock
	log         *logger.Logger
}

// NewContentService creates a new instance of contentService.
func NewContentService(
	sessionRepo repository.SessionRepository,
	historyRepo repository.WorkoutHistoryRepository,
	contentRepo repository.WorkoutContentRepository,
	generator ai.Generator,
	clock schedule.Clock,
	log *logger.Logger,
) ContentService {
	return &contentService{
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		contentRepo: contentRepo,
		generator:   generator,
		clock:       clock,
		log:         log,
	}
}

func (s *contentService) GenerateToday(ctx context.Context) (int, error) {
	return s.GenerateForDate(ctx, schedule.Today(s.clock))
}

func (s *contentService) GenerateForDate(ctx context.Context, date time.Time) (int, error) {
	date = schedule.Midnight(date)
	sessions, err := s.sessionRepo.GetPendingWithoutContent(ctx, date)
	if err != nil {
		return 0, err
	}

	log := s.log.With("run", uuid.NewString(), "date", date.Format("2006-01-02"))
	log.Info("content generation sweep", "sessions", len(sessions))

	generated := 0
	for i := range sessions {
		if err := s.generateOne(ctx, &sessions[i]); err != nil {
			// Isolated failure: the session keeps a nil content ref and
			// is picked up again by the next sweep.
			log.Warn("content generation failed",
				"session", sessions[i].ID.Hex(),
				"sport", sessions[i].Sport,
				"error", err)
			continue
		}
		generated++
	}

	log.Info("content generation done", "generated", generated, "failed", len(sessions)-generated)
	return generated, nil
}

func (s *contentService) generateOne(ctx context.Context, session *domain.ScheduledSession) error {
	previous, err := s.historyRepo.GetRecentBySport(ctx, session.UserID, session.Sport, previousSessionContext)
	if err != nil {
		// History is context only; generate without it.
		previous = nil
	}

	req := ai.GenerationRequest{
		Sport:           session.Sport,
		WorkoutType:     string(session.WorkoutType),
		DurationMinutes: session.DurationMinutes,
	}
	for _, rec := range previous {
		req.PreviousSessions = append(req.PreviousSessions, ai.PreviousSession{
			Title:     rec.Title,
			Completed: rec.Completed,
			Date:      rec.CreatedAt,
		})
	}

	workout, err := s.generator.Generate(ctx, req)
	if err != nil {
		return err
	}

	content := &domain.WorkoutContent{
		UserID:          session.UserID,
		Title:           workout.Title,
		Sport:           session.Sport,
		WorkoutType:     session.WorkoutType,
		DurationMinutes: session.DurationMinutes,
		Warmup:          workout.Warmup,
		Cooldown:        workout.Cooldown,
	}
	for _, ex := range workout.Exercises {
		content.Exercises = append(content.Exercises, domain.ContentExercise{
			Name:        ex.Name,
			Sets:        ex.Sets,
			Reps:        ex.Reps,
			Rest:        ex.Rest,
			Description: ex.Description,
		})
	}

	contentID, err := s.contentRepo.Create(ctx, content)
	if err != nil {
		return err
	}
	return s.sessionRepo.SetContentRef(ctx, session.ID, contentID)
}
