package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

type UserRepository interface {
	GetById(ctx context.Context, id uuid.UUID) (*User, error)
}
