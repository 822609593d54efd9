package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProgressSummary aggregates a user's logged training inside a time window.
type ProgressSummary struct {
	TotalWorkouts        int
	TotalExercises       int
	TotalSets            int
	TotalReps            int
	TotalDurationMinutes int
	Frequency            WorkoutFrequency
	ExerciseStats        []ExerciseStats
}

// WorkoutFrequency counts logged sessions inside the trailing windows,
// regardless of the summary window requested.
type WorkoutFrequency struct {
	Last7Days  int
	Last30Days int
	Last90Days int
}

type ExerciseStats struct {
	ExerciseID   int
	ExerciseName string
	TotalSets    int
	TotalReps    int
	MaxWeightKg  decimal.Decimal
	AvgWeightKg  decimal.Decimal
}

// ProgressionPoint is one logged set of an exercise, ordered by session
// date for progressive overload monitoring.
type ProgressionPoint struct {
	Date      time.Time
	SetNumber int
	Reps      int
	WeightKg  decimal.Decimal
	RPE       *decimal.Decimal
}

type ProgressRepository interface {
	GetSummary(ctx context.Context, userID uuid.UUID, since time.Time) (*ProgressSummary, error)
	GetExerciseProgress(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]ProgressionPoint, error)
}
