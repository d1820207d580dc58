// internal/repository/mongo/session_repo.go
package mongo

import (
	"alcyxob/sportplan/internal/domain"
	"alcyxob/sportplan/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const sessionCollectionName = "scheduled_sessions"

// mongoSessionRepository implements repository.SessionRepository
type mongoSessionRepository struct {
	collection *mongo.Collection
}

// NewMongoSessionRepository creates a new scheduled-session repository.
func NewMongoSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &mongoSessionRepository{
		collection: db.Collection(sessionCollectionName),
	}
}

// Create inserts a single session (used for makeup sessions).
func (r *mongoSessionRepository) Create(ctx context.Context, session *domain.ScheduledSession) (primitive.ObjectID, error) {
	if session.UserID == primitive.NilObjectID || session.Sport == "" {
		return primitive.NilObjectID, errors.New("session requires userId and sport")
	}
	session.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, session)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted session ID")
	}
	return insertedID, nil
}

// CreateBatch inserts a generated schedule in one bulk call. Ordered
// insert: the first failure stops the batch and surfaces the error.
func (r *mongoSessionRepository) CreateBatch(ctx context.Context, sessions []domain.ScheduledSession) (int, error) {
	if len(sessions) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(sessions))
	for i := range sessions {
		sessions[i].ID = primitive.NewObjectID()
		sessions[i].CreatedAt = now
		sessions[i].UpdatedAt = now
		docs[i] = sessions[i]
	}

	result, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, repository.ErrDuplicate
		}
		return 0, err
	}
	return len(result.InsertedIDs), nil
}

// GetByID retrieves a single session by its ID.
func (r *mongoSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ScheduledSession, error) {
	var session domain.ScheduledSession
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// GetFuturePending retrieves open sessions for one sport from the given
// date onwards, ordered by date ascending.
func (r *mongoSessionRepository) GetFuturePending(ctx context.Context, userID primitive.ObjectID, sport string, from time.Time) ([]domain.ScheduledSession, error) {
	filter := bson.M{
		"userId":        userID,
		"sport":         sport,
		"scheduledDate": bson.M{"$gte": from},
		"completed":     false,
		"skipped":       false,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}})
	return r.findSessions(ctx, filter, findOptions)
}

// GetByUserAndRange retrieves all of a user's sessions in a date range,
// ordered by date then time of day.
func (r *mongoSessionRepository) GetByUserAndRange(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ScheduledSession, error) {
	filter := bson.M{
		"userId":        userID,
		"scheduledDate": bson.M{"$gte": from, "$lte": to},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}, {Key: "timeOfDay", Value: 1}})
	return r.findSessions(ctx, filter, findOptions)
}

// GetPendingWithoutContent retrieves open sessions on a date that still
// lack generated content. Used by the morning generation sweep.
func (r *mongoSessionRepository) GetPendingWithoutContent(ctx context.Context, date time.Time) ([]domain.ScheduledSession, error) {
	filter := bson.M{
		"scheduledDate": date,
		"contentRef":    bson.M{"$exists": false},
		"completed":     false,
		"skipped":       false,
	}
	return r.findSessions(ctx, filter, options.Find())
}

func (r *mongoSessionRepository) findSessions(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.ScheduledSession, error) {
	var sessions []domain.ScheduledSession
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ExistsOnDate reports whether the user already has any session on the
// given date, regardless of sport or time of day.
func (r *mongoSessionRepository) ExistsOnDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (bool, error) {
	filter := bson.M{"userId": userID, "scheduledDate": date}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsForPlan reports whether any session was already generated for the
// plan. Guards against duplicate schedules from repeated generation calls.
func (r *mongoSessionRepository) ExistsForPlan(ctx context.Context, planID primitive.ObjectID) (bool, error) {
	filter := bson.M{"planId": planID}
	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// SetStatus updates the completed/skipped flags (both false = undo).
func (r *mongoSessionRepository) SetStatus(ctx context.Context, id primitive.ObjectID, completed, skipped bool) error {
	return r.updateFields(ctx, id, bson.M{"completed": completed, "skipped": skipped})
}

// SetIntensity updates the structured intensity adjustment.
func (r *mongoSessionRepository) SetIntensity(ctx context.Context, id primitive.ObjectID, intensity domain.IntensityAdjustment) error {
	return r.updateFields(ctx, id, bson.M{"intensity": intensity})
}

// SetContentRef links a session to its generated content.
func (r *mongoSessionRepository) SetContentRef(ctx context.Context, id, contentID primitive.ObjectID) error {
	return r.updateFields(ctx, id, bson.M{"contentRef": contentID})
}

func (r *mongoSessionRepository) updateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if id == primitive.NilObjectID {
		return errors.New("session ID is required for update")
	}
	fields["updatedAt"] = time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureSessionIndexes creates necessary indexes. Call during startup.
func EnsureSessionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Future-window query: open sessions per user and sport by date.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "sport", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index(),
		},
		{
			// Calendar range fetch and the full-day exclusivity check.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "scheduledDate", Value: 1}},
			Options: options.Index(),
		},
		{
			// One slot per (plan, date, sport, timeOfDay): regenerating a
			// plan cannot duplicate sessions. Partial so that makeup
			// sessions without a plan are unconstrained.
			Keys: bson.D{{Key: "planId", Value: 1}, {Key: "scheduledDate", Value: 1}, {Key: "sport", Value: 1}, {Key: "timeOfDay", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(
				bson.M{"planId": bson.M{"$exists": true}},
			),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
