package mocks

import (
	"context"

	"github.com/fitplanpro/workout-backend/internal/domain"
)

type MockExerciseRepo struct {
	domain.ExerciseRepository
	GetAllFunc       func(ctx context.Context, filters domain.ExerciseFilters) ([]*domain.Exercise, error)
	GetByIdFunc      func(ctx context.Context, id int) (*domain.Exercise, error)
	GetByIdsFunc     func(ctx context.Context, ids []int) ([]*domain.Exercise, error)
	GetAvailableFunc func(ctx context.Context, equipment []string) ([]*domain.Exercise, error)
}

func (m *MockExerciseRepo) GetAll(ctx context.Context, filters domain.ExerciseFilters) ([]*domain.Exercise, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockExerciseRepo) GetById(ctx context.Context, id int) (*domain.Exercise, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockExerciseRepo) GetByIds(ctx context.Context, ids []int) ([]*domain.Exercise, error) {
	return m.GetByIdsFunc(ctx, ids)
}

func (m *MockExerciseRepo) GetAvailable(ctx context.Context, equipment []string) ([]*domain.Exercise, error) {
	return m.GetAvailableFunc(ctx, equipment)
}
