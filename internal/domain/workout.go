package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TrainingGoal is the purpose a workout plan is built around. It decides the
// set scheme applied to every exercise in a generated plan.
type TrainingGoal string

const (
	GoalStrength    TrainingGoal = "strength"
	GoalHypertrophy TrainingGoal = "hypertrophy"
	GoalEndurance   TrainingGoal = "endurance"
	GoalWeightLoss  TrainingGoal = "weight_loss"
	GoalGeneral     TrainingGoal = "general"
)

func TrainingGoals() []TrainingGoal {
	return []TrainingGoal{GoalStrength, GoalHypertrophy, GoalEndurance, GoalWeightLoss, GoalGeneral}
}

func (g TrainingGoal) Valid() bool {
	switch g {
	case GoalStrength, GoalHypertrophy, GoalEndurance, GoalWeightLoss, GoalGeneral:
		return true
	}
	return false
}

type SetScheme struct {
	Sets        int
	Reps        int
	RestSeconds int
}

func (g TrainingGoal) SetScheme() SetScheme {
	switch g {
	case GoalStrength:
		return SetScheme{Sets: 5, Reps: 5, RestSeconds: 180}
	case GoalHypertrophy:
		return SetScheme{Sets: 4, Reps: 10, RestSeconds: 90}
	case GoalEndurance:
		return SetScheme{Sets: 3, Reps: 15, RestSeconds: 60}
	case GoalWeightLoss:
		return SetScheme{Sets: 3, Reps: 12, RestSeconds: 45}
	default:
		return SetScheme{Sets: 3, Reps: 10, RestSeconds: 90}
	}
}

// EstimatedSeconds approximates how long one exercise takes under the
// scheme, assuming roughly three seconds per rep plus rest between sets.
func (s SetScheme) EstimatedSeconds() int {
	return s.Sets * (s.Reps*3 + s.RestSeconds)
}

type Workout struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Goal      string
	CreatedAt time.Time
	Exercises []WorkoutExercise
}

type WorkoutExercise struct {
	ID            int
	WorkoutID     uuid.UUID
	ExerciseID    int
	ExerciseName  string
	PrimaryMuscle string
	TargetSets    int
	TargetReps    int
	RestSeconds   int
}

// WorkoutHistory is a workout together with its logged sessions, as returned
// by the history listing.
type WorkoutHistory struct {
	Workout Workout
	Logs    []WorkoutLog
}

type WorkoutRepository interface {
	// Create persists the workout and its exercises in one transaction.
	Create(ctx context.Context, workout *Workout) error
	GetById(ctx context.Context, id uuid.UUID) (*Workout, error)
	GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*WorkoutHistory, error)
	HasExercise(ctx context.Context, workoutID uuid.UUID, exerciseID int) (bool, error)
}
