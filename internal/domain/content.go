package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentExercise is one prescribed exercise inside generated content.
type ContentExercise struct {
	Name        string `bson:"name" json:"name"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        string `bson:"reps" json:"reps"` // e.g. "8-12"
	Rest        string `bson:"rest" json:"rest"` // e.g. "60s"
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// WorkoutContent is the generated body of a session: warm-up, main
// exercises and cool-down. Produced by the content generator and linked
// from ScheduledSession.ContentRef.
type WorkoutContent struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Title           string             `bson:"title" json:"title"`
	Sport           string             `bson:"sport" json:"sport"`
	WorkoutType     WorkoutType        `bson:"workoutType" json:"workoutType"`
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	Warmup          []string           `bson:"warmup" json:"warmup"`
	Exercises       []ContentExercise  `bson:"exercises" json:"exercises"`
	Cooldown        []string           `bson:"cooldown" json:"cooldown"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
