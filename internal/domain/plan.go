package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SportPreference is a user's desired training pattern for one sport
// within a plan. FrequencyPerWeek may exceed the number of preferred
// days; the builder borrows additional weekdays to make up the gap.
type SportPreference struct {
	Sport                  string      `json:"sport"`
	FrequencyPerWeek       int         `json:"frequencyPerWeek"` // 1-14
	PreferredDays          []DayOfWeek `json:"preferredDays"`
	SessionDurationMinutes int         `json:"sessionDurationMinutes"`
	Equipment              []string    `json:"equipment,omitempty"`
}

// PlanSpecification is the immutable input to plan generation. It is not
// persisted as its own entity; generated sessions carry the PlanID back
// to whatever created the plan.
type PlanSpecification struct {
	PlanID                 primitive.ObjectID
	UserID                 primitive.ObjectID
	StartDate              time.Time
	EndDate                time.Time
	SportPreferences       []SportPreference
	MultipleSessionsPerDay bool
	IncludesStrength       bool
}

// SportWeightlifting is the sport name that already covers strength work;
// the strength injector stays out of plans that train it explicitly.
const SportWeightlifting = "weightlifting"
