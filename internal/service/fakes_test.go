package service

import (
	"context"
	"sort"
	"time"

	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fixedClock pins "today" for deterministic tests.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fakeSessionRepo is an in-memory repository.SessionRepository.
type fakeSessionRepo struct {
	sessions map[primitive.ObjectID]*domain.ScheduledSession
	batchErr error
	planSeen map[primitive.ObjectID]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[primitive.ObjectID]*domain.ScheduledSession),
		planSeen: make(map[primitive.ObjectID]bool),
	}
}

func (r *fakeSessionRepo) add(s domain.ScheduledSession) primitive.ObjectID {
	if s.ID == primitive.NilObjectID {
		s.ID = primitive.NewObjectID()
	}
	copied := s
	r.sessions[copied.ID] = &copied
	if copied.PlanID != nil {
		r.planSeen[*copied.PlanID] = true
	}
	return copied.ID
}

func (r *fakeSessionRepo) Create(_ context.Context, session *domain.ScheduledSession) (primitive.ObjectID, error) {
	id := r.add(*session)
	session.ID = id
	return id, nil
}

func (r *fakeSessionRepo) CreateBatch(_ context.Context, sessions []domain.ScheduledSession) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	for _, s := range sessions {
		r.add(s)
	}
	return len(sessions), nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ScheduledSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) GetFuturePending(_ context.Context, userID primitive.ObjectID, sport string, from time.Time) ([]domain.ScheduledSession, error) {
	var out []domain.ScheduledSession
	for _, s := range r.sessions {
		if s.UserID == userID && s.Sport == sport && s.IsPending() && !s.ScheduledDate.Before(from) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return out, nil
}

func (r *fakeSessionRepo) GetByUserAndRange(_ context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ScheduledSession, error) {
	var out []domain.ScheduledSession
	for _, s := range r.sessions {
		if s.UserID == userID && !s.ScheduledDate.Before(from) && !s.ScheduledDate.After(to) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.Before(out[j].ScheduledDate) })
	return out, nil
}

func (r *fakeSessionRepo) GetPendingWithoutContent(_ context.Context, date time.Time) ([]domain.ScheduledSession, error) {
	var out []domain.ScheduledSession
	for _, s := range r.sessions {
		if s.ScheduledDate.Equal(date) && s.IsPending() && s.ContentRef == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) ExistsOnDate(_ context.Context, userID primitive.ObjectID, date time.Time) (bool, error) {
	for _, s := range r.sessions {
		if s.UserID == userID && s.ScheduledDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSessionRepo) ExistsForPlan(_ context.Context, planID primitive.ObjectID) (bool, error) {
	return r.planSeen[planID], nil
}

func (r *fakeSessionRepo) SetStatus(_ context.Context, id primitive.ObjectID, completed, skipped bool) error {
	s, ok := r.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Completed, s.Skipped = completed, skipped
	return nil
}

func (r *fakeSessionRepo) SetIntensity(_ context.Context, id primitive.ObjectID, intensity domain.IntensityAdjustment) error {
	s, ok := r.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Intensity = intensity
	return nil
}

func (r *fakeSessionRepo) SetContentRef(_ context.Context, id, contentID primitive.ObjectID) error {
	s, ok := r.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.ContentRef = &contentID
	return nil
}

// fakeHistoryRepo is an in-memory repository.WorkoutHistoryRepository.
// records are held newest first, as the real repository returns them.
type fakeHistoryRepo struct {
	records []domain.WorkoutRecord
	created []domain.WorkoutRecord
}

func (r *fakeHistoryRepo) Create(_ context.Context, record *domain.WorkoutRecord) (primitive.ObjectID, error) {
	record.ID = primitive.NewObjectID()
	r.created = append(r.created, *record)
	r.records = append([]domain.WorkoutRecord{*record}, r.records...)
	return record.ID, nil
}

func (r *fakeHistoryRepo) GetRecentBySport(_ context.Context, userID primitive.ObjectID, sport string, limit int) ([]domain.WorkoutRecord, error) {
	var out []domain.WorkoutRecord
	for _, rec := range r.records {
		if rec.UserID == userID && rec.Sport == sport {
			out = append(out, rec)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// fakeContentRepo is an in-memory repository.WorkoutContentRepository.
type fakeContentRepo struct {
	contents map[primitive.ObjectID]*domain.WorkoutContent
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{contents: make(map[primitive.ObjectID]*domain.WorkoutContent)}
}

func (r *fakeContentRepo) Create(_ context.Context, content *domain.WorkoutContent) (primitive.ObjectID, error) {
	content.ID = primitive.NewObjectID()
	copied := *content
	r.contents[content.ID] = &copied
	return content.ID, nil
}

func (r *fakeContentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.WorkoutContent, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}
