package mocks

import (
	"context"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
)

type MockWorkoutLogRepo struct {
	domain.WorkoutLogRepository
	CreateFunc               func(ctx context.Context, log *domain.WorkoutLog) error
	GetLatestByWorkoutIdFunc func(ctx context.Context, workoutID uuid.UUID) (*domain.WorkoutLog, error)
	GetAllByWorkoutIdFunc    func(ctx context.Context, workoutID uuid.UUID) ([]*domain.WorkoutLog, error)
	CreateSetsFunc           func(ctx context.Context, sets []*domain.ExerciseSet) error
}

func (m *MockWorkoutLogRepo) Create(ctx context.Context, log *domain.WorkoutLog) error {
	return m.CreateFunc(ctx, log)
}

func (m *MockWorkoutLogRepo) GetLatestByWorkoutId(ctx context.Context, workoutID uuid.UUID) (*domain.WorkoutLog, error) {
	return m.GetLatestByWorkoutIdFunc(ctx, workoutID)
}

func (m *MockWorkoutLogRepo) GetAllByWorkoutId(ctx context.Context, workoutID uuid.UUID) ([]*domain.WorkoutLog, error) {
	return m.GetAllByWorkoutIdFunc(ctx, workoutID)
}

func (m *MockWorkoutLogRepo) CreateSets(ctx context.Context, sets []*domain.ExerciseSet) error {
	return m.CreateSetsFunc(ctx, sets)
}
