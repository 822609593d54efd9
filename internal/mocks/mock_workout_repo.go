package mocks

import (
	"context"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
)

type MockWorkoutRepo struct {
	domain.WorkoutRepository
	CreateFunc      func(ctx context.Context, workout *domain.Workout) error
	GetByIdFunc     func(ctx context.Context, id uuid.UUID) (*domain.Workout, error)
	GetHistoryFunc  func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.WorkoutHistory, error)
	HasExerciseFunc func(ctx context.Context, workoutID uuid.UUID, exerciseID int) (bool, error)
}

func (m *MockWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) error {
	return m.CreateFunc(ctx, workout)
}

func (m *MockWorkoutRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockWorkoutRepo) GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.WorkoutHistory, error) {
	return m.GetHistoryFunc(ctx, userID, limit)
}

func (m *MockWorkoutRepo) HasExercise(ctx context.Context, workoutID uuid.UUID, exerciseID int) (bool, error) {
	return m.HasExerciseFunc(ctx, workoutID, exerciseID)
}
