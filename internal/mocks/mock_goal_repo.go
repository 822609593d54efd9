package mocks

import (
	"context"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
)

type MockGoalRepo struct {
	domain.GoalRepository
	CreateFunc         func(ctx context.Context, goal *domain.Goal) error
	GetAllByUserIdFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error)
}

func (m *MockGoalRepo) Create(ctx context.Context, goal *domain.Goal) error {
	return m.CreateFunc(ctx, goal)
}

func (m *MockGoalRepo) GetAllByUserId(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	return m.GetAllByUserIdFunc(ctx, userID)
}
