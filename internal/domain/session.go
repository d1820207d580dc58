package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeOfDay marks which slot of the day a session occupies.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

// WorkoutType classifies the kind of work a session contains.
type WorkoutType string

const (
	WorkoutTraining WorkoutType = "training"
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
)

// IntensityAdjustment is the structured adaptation state of a session.
// The adjustment engine sets it; the display title is derived from it
// rather than encoding the adjustment inside the stored title.
type IntensityAdjustment string

const (
	IntensityNone        IntensityAdjustment = "none"
	IntensityIntensified IntensityAdjustment = "intensified"
	IntensityLight       IntensityAdjustment = "light"
)

// ScheduledSession is one planned training occurrence on the calendar.
// It is created by the schedule builder (or as a makeup session), later
// filled with generated content, and finally completed or skipped by the
// user.
type ScheduledSession struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	PlanID          *primitive.ObjectID `bson:"planId,omitempty" json:"planId,omitempty"` // nil for makeup/ad-hoc sessions
	UserID          primitive.ObjectID  `bson:"userId" json:"userId"`
	ScheduledDate   time.Time           `bson:"scheduledDate" json:"scheduledDate"` // UTC midnight
	TimeOfDay       TimeOfDay           `bson:"timeOfDay" json:"timeOfDay"`
	Sport           string              `bson:"sport" json:"sport"`
	WorkoutType     WorkoutType         `bson:"workoutType" json:"workoutType"`
	Title           string              `bson:"title" json:"title"`
	DurationMinutes int                 `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Intensity       IntensityAdjustment `bson:"intensity" json:"intensity"`
	Completed       bool                `bson:"completed" json:"completed"`
	Skipped         bool                `bson:"skipped" json:"skipped"`
	ContentRef      *primitive.ObjectID `bson:"contentRef,omitempty" json:"contentRef,omitempty"` // generated WorkoutContent, nil until generated
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Literal suffixes the mobile app renders for adjusted sessions.
const (
	intensifiedSuffix = " (Intensified)"
	lightSuffix       = " (Light)"
)

// DisplayTitle returns the title with the intensity suffix applied.
// Applying an adjustment twice can never double the suffix because the
// stored title is left untouched.
func (s *ScheduledSession) DisplayTitle() string {
	switch s.Intensity {
	case IntensityIntensified:
		return s.Title + intensifiedSuffix
	case IntensityLight:
		return s.Title + lightSuffix
	default:
		return s.Title
	}
}

// IsPending reports whether the session is still open (neither completed
// nor skipped).
func (s *ScheduledSession) IsPending() bool {
	return !s.Completed && !s.Skipped
}
