package ai

import (
	"context"
	"fmt"
	"time"
)

// Exercise is one prescribed exercise in a generated workout.
type Exercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	Rest        string `json:"rest"`
	Description string `json:"description,omitempty"`
}

// GeneratedWorkout is the structured body returned by the generator.
type GeneratedWorkout struct {
	Title     string     `json:"title"`
	Warmup    []string   `json:"warmup"`
	Exercises []Exercise `json:"exercises"`
	Cooldown  []string   `json:"cooldown"`
}

// PreviousSession gives the generator context about recent training.
type PreviousSession struct {
	Title     string
	Completed bool
	Date      time.Time
}

// GenerationRequest describes the session that needs content.
type GenerationRequest struct {
	Sport            string
	WorkoutType      string
	FitnessLevel     string
	DurationMinutes  int
	Goals            string
	Equipment        []string
	PreviousSessions []PreviousSession
}

// Generator produces workout content for a single session. A failed call
// affects only the session it was made for; callers must not let it
// cascade to sibling sessions.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (*GeneratedWorkout, error)
}

// FallbackWorkout is the deterministic content used when the text
// service returns something unusable.
func FallbackWorkout(req GenerationRequest) *GeneratedWorkout {
	return &GeneratedWorkout{
		Title:  fmt.Sprintf("%s %s session", req.Sport, req.WorkoutType),
		Warmup: []string{"Dynamic warm-up", "Joint mobility", "Light movement preparation"},
		Exercises: []Exercise{
			{Name: "Main Exercise", Sets: 3, Reps: "8-12", Rest: "60s", Description: "Primary movement pattern"},
		},
		Cooldown: []string{"Static stretching", "Deep breathing", "Recovery"},
	}
}
