// internal/repository/mongo/content_repo.go
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

const contentCollectionName = "workout_content"

// mongoContentRepository implements repository.WorkoutContentRepository
type mongoContentRepository struct {
	collection *mongo.Collection
}

// NewMongoContentRepository creates a new workout-content repository.
func NewMongoContentRepository(db *mongo.Database) repository.WorkoutContentRepository {
	return &mongoContentRepository{
		collection: db.Collection(contentCollectionName),
	}
}

// Create stores one generated workout body.
func (r *mongoContentRepository) Create(ctx context.Context, content *domain.WorkoutContent) (primitive.ObjectID, error) {
	if content.UserID == primitive.NilObjectID || content.Title == "" {
		return primitive.NilObjectID, errors.New("workout content requires userId and title")
	}
	content.ID = primitive.NewObjectID()
	content.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, content)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted content ID")
	}
	return insertedID, nil
}

// GetByID retrieves one generated workout body.
func (r *mongoContentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutContent, error) {
	var content domain.WorkoutContent
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &content, nil
}

// EnsureContentIndexes creates necessary indexes. Call during startup.
func EnsureContentIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
