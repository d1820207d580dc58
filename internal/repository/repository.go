package repository

import (
	"alcyxob/sportplan/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDuplicate    = RepositoryError("duplicate entry")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// SessionRepository defines the interface for interacting with scheduled sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.ScheduledSession) (primitive.ObjectID, error)
	// CreateBatch inserts a full generated schedule in one call. The
	// insert is all-or-nothing; no partial batch is left behind.
	CreateBatch(ctx context.Context, sessions []domain.ScheduledSession) (int, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ScheduledSession, error)
	// GetFuturePending returns open sessions of one sport on or after
	// the given date, ordered by date ascending.
	GetFuturePending(ctx context.Context, userID primitive.ObjectID, sport string, from time.Time) ([]domain.ScheduledSession, error)
	GetByUserAndRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ScheduledSession, error)
	// GetPendingWithoutContent returns open sessions on a date that have
	// no generated content yet.
	GetPendingWithoutContent(ctx context.Context, date time.Time) ([]domain.ScheduledSession, error)
	ExistsOnDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (bool, error)
	ExistsForPlan(ctx context.Context, planID primitive.ObjectID) (bool, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, completed, skipped bool) error
	SetIntensity(ctx context.Context, id primitive.ObjectID, intensity domain.IntensityAdjustment) error
	SetContentRef(ctx context.Context, id, contentID primitive.ObjectID) error
}

// WorkoutHistoryRepository defines the interface for the completed-activity log.
// The scheduling subsystem appends on completion and reads recent records
// for the adjustment heuristic; it never mutates existing entries.
type WorkoutHistoryRepository interface {
	Create(ctx context.Context, record *domain.WorkoutRecord) (primitive.ObjectID, error)
	GetRecentBySport(ctx context.Context, userID primitive.ObjectID, sport string, limit int) ([]domain.WorkoutRecord, error)
}

// WorkoutContentRepository defines the interface for generated workout content.
type WorkoutContentRepository interface {
	Create(ctx context.Context, content *domain.WorkoutContent) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutContent, error)
}
