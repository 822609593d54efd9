package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is a user-set fitness target, e.g. a body weight or a lift number.
type Goal struct {
	ID          int
	UserID      uuid.UUID
	GoalType    string
	TargetValue decimal.Decimal
	CreatedAt   time.Time
}

type GoalRepository interface {
	Create(ctx context.Context, goal *Goal) error
	GetAllByUserId(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
}
