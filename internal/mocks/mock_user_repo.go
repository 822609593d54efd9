package mocks

import (
	"context"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
)

type MockUserRepo struct {
	domain.UserRepository
	GetByIdFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.GetByIdFunc(ctx, id)
}
