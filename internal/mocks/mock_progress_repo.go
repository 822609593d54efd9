package mocks

import (
	"context"
	"time"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
)

type MockProgressRepo struct {
	domain.ProgressRepository
	GetSummaryFunc          func(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ProgressSummary, error)
	GetExerciseProgressFunc func(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]domain.ProgressionPoint, error)
}

func (m *MockProgressRepo) GetSummary(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ProgressSummary, error) {
	return m.GetSummaryFunc(ctx, userID, since)
}

func (m *MockProgressRepo) GetExerciseProgress(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]domain.ProgressionPoint, error) {
	return m.GetExerciseProgressFunc(ctx, userID, exerciseID, since)
}
