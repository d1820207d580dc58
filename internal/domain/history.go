package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutRecord is one entry in the completed-activity log. The
// adjustment engine reads the most recent records per sport to compute a
// completion rate; this subsystem never mutates existing records.
type WorkoutRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Sport       string             `bson:"sport" json:"sport"`
	WorkoutType WorkoutType        `bson:"workoutType" json:"workoutType"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Completed   bool               `bson:"completed" json:"completed"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
