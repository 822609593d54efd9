package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WorkoutLog struct {
	ID              uuid.UUID
	WorkoutID       uuid.UUID
	PerformedAt     time.Time
	DurationMinutes int
	Sets            []ExerciseSet
}

type ExerciseSet struct {
	ID           int
	WorkoutLogID uuid.UUID
	ExerciseID   int
	ExerciseName string
	SetNumber    int
	Reps         int
	WeightKg     decimal.Decimal
	RPE          *decimal.Decimal
}

type WorkoutLogRepository interface {
	Create(ctx context.Context, log *WorkoutLog) error

	// GetLatestByWorkoutId returns the most recent log for the workout, or
	// ErrNoWorkoutLog when the workout has never been logged.
	GetLatestByWorkoutId(ctx context.Context, workoutID uuid.UUID) (*WorkoutLog, error)

	// GetAllByWorkoutId returns the workout's logs newest first, each with
	// its exercise sets populated.
	GetAllByWorkoutId(ctx context.Context, workoutID uuid.UUID) ([]*WorkoutLog, error)

	CreateSets(ctx context.Context, sets []*ExerciseSet) error
}
