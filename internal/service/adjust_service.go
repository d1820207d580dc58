package service

import (
	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/logger"
	"alcyxob/sportplan/internal/repository"
	"alcyxob/sportplan/internal/schedule"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrNotSessionOwner  = errors.New("session does not belong to this user")
	ErrInvalidStatus    = errors.New("invalid session status")
	ErrAdjustmentFailed = errors.New("failed to adjust schedule")
)

// SessionStatus is the user-facing lifecycle state of a session.
type SessionStatus string

const (
	StatusCompleted SessionStatus = "completed"
	StatusSkipped   SessionStatus = "skipped"
	StatusPending   SessionStatus = "pending" // undo: back to the initial state
)

// AdjustmentResult reports what a single adjustment run did.
type AdjustmentResult struct {
	Strategy      schedule.Strategy
	UpdatedCount  int
	MakeupCreated bool
}

// AdjustmentService reacts to session status changes: it selects a
// strategy, mutates a bounded window of upcoming sessions and may insert
// one makeup session after a skip.
type AdjustmentService interface {
	// AdjustSchedule runs the engine for an already-changed session.
	AdjustSchedule(ctx context.Context, actorID, sessionID primitive.ObjectID) (*AdjustmentResult, error)
	// SetSessionStatus flips the completed/skipped flags and then runs
	// the engine. "pending" reverts a previous completion or skip.
	SetSessionStatus(ctx context.Context, actorID, sessionID primitive.ObjectID, status SessionStatus) (*AdjustmentResult, error)
}

// adjustmentService implements the AdjustmentService interface.
type adjustmentService struct {
	sessionRepo repository.SessionRepository
	historyRepo repository.WorkoutHistoryRepository
	clock       schedule.Clock
	log         *logger.Logger
	locks       keyedMutex
}

// NewAdjustmentService creates a new instance of adjustmentService.
func NewAdjustmentService(
	sessionRepo repository.SessionRepository,
	historyRepo repository.WorkoutHistoryRepository,
	clock schedule.Clock,
	log *logger.Logger,
) AdjustmentService {
	return &adjustmentService{
		sessionRepo: sessionRepo,
		historyRepo: historyRepo,
		clock:       clock,
		log:         log,
	}
}

// AdjustSchedule loads the changed session and applies the engine to its
// future window. Zero affected sessions is a normal outcome, not an
// error.
func (s *adjustmentService) AdjustSchedule(ctx context.Context, actorID, sessionID primitive.ObjectID) (*AdjustmentResult, error) {
	session, err := s.loadOwned(ctx, actorID, sessionID)
	if err != nil {
		return nil, err
	}
	return s.adjust(ctx, session)
}

// SetSessionStatus flips the status flags, records completed and skipped
// sessions in the activity log, and then runs the engine against the new
// state.
func (s *adjustmentService) SetSessionStatus(ctx context.Context, actorID, sessionID primitive.ObjectID, status SessionStatus) (*AdjustmentResult, error) {
	session, err := s.loadOwned(ctx, actorID, sessionID)
	if err != nil {
		return nil, err
	}

	var completed, skipped bool
	switch status {
	case StatusCompleted:
		completed = true
	case StatusSkipped:
		skipped = true
	case StatusPending:
		// both flags back to false
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.sessionRepo.SetStatus(ctx, session.ID, completed, skipped); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	session.Completed = completed
	session.Skipped = skipped

	if status == StatusCompleted || status == StatusSkipped {
		record := &domain.WorkoutRecord{
			UserID:      session.UserID,
			Sport:       session.Sport,
			WorkoutType: session.WorkoutType,
			Title:       session.Title,
			Completed:   completed,
		}
		if _, err := s.historyRepo.Create(ctx, record); err != nil {
			// The log is an input to future heuristics, not part of the
			// status change itself; keep going.
			s.log.Warn("failed to append workout history", "session", session.ID.Hex(), "error", err)
		}
	}

	return s.adjust(ctx, session)
}

// adjust runs one engine pass for a changed session. Runs for the same
// (user, sport) are serialized so two nearby status changes cannot race
// on overlapping future windows.
func (s *adjustmentService) adjust(ctx context.Context, changed *domain.ScheduledSession) (*AdjustmentResult, error) {
	unlock := s.locks.lock(changed.UserID.Hex() + "|" + changed.Sport)
	defer unlock()

	today := schedule.Today(s.clock)
	referenceDate := schedule.Midnight(changed.ScheduledDate)
	if referenceDate.Before(today) {
		referenceDate = today
	}

	window, err := s.sessionRepo.GetFuturePending(ctx, changed.UserID, changed.Sport, referenceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdjustmentFailed, err)
	}

	records, err := s.historyRepo.GetRecentBySport(ctx, changed.UserID, changed.Sport, schedule.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdjustmentFailed, err)
	}

	strategy := schedule.SelectStrategy(changed, schedule.CompletionRate(records))
	adjustment := schedule.AdjustmentFor(strategy)

	updated := 0
	if adjustment != domain.IntensityNone {
		for i := 0; i < len(window) && i < schedule.AdjustWindow; i++ {
			if window[i].Intensity == adjustment {
				continue // already adjusted, never stack
			}
			if err := s.sessionRepo.SetIntensity(ctx, window[i].ID, adjustment); err != nil {
				// Earlier mutations stay applied; the engine is not
				// transactional across the window.
				return nil, fmt.Errorf("%w: %v", ErrAdjustmentFailed, err)
			}
			updated++
		}
	}

	result := &AdjustmentResult{Strategy: strategy, UpdatedCount: updated}

	if strategy == schedule.StrategyIntensify && len(window) > 0 {
		created, err := s.insertMakeup(ctx, changed, &window[0], today)
		if err != nil {
			return nil, err
		}
		result.MakeupCreated = created
	}

	s.log.Info("schedule adjusted",
		"session", changed.ID.Hex(),
		"sport", changed.Sport,
		"strategy", strategy,
		"updated", updated,
		"makeup", result.MakeupCreated)
	return result, nil
}

// insertMakeup creates at most one replacement session: the day before
// the earliest open session, afternoon slot, and only if that day is
// still completely free and not in the past.
func (s *adjustmentService) insertMakeup(ctx context.Context, changed, earliest *domain.ScheduledSession, today time.Time) (bool, error) {
	makeupDate := schedule.MakeupDate(earliest.ScheduledDate)
	if makeupDate.Before(today) {
		return false, nil
	}

	occupied, err := s.sessionRepo.ExistsOnDate(ctx, changed.UserID, makeupDate)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrAdjustmentFailed, err)
	}
	if occupied {
		return false, nil
	}

	makeup := schedule.MakeupSession(changed, makeupDate)
	if _, err := s.sessionRepo.Create(ctx, &makeup); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return false, nil // another trigger beat us to the day
		}
		return false, fmt.Errorf("%w: %v", ErrAdjustmentFailed, err)
	}
	return true, nil
}

func (s *adjustmentService) loadOwned(ctx context.Context, actorID, sessionID primitive.ObjectID) (*domain.ScheduledSession, error) {
	if actorID == primitive.NilObjectID || sessionID == primitive.NilObjectID {
		return nil, errors.New("user ID and session ID are required")
	}
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if session.UserID != actorID {
		return nil, ErrNotSessionOwner
	}
	return session, nil
}

// keyedMutex serializes work per string key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
