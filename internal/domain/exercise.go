package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Exercise struct {
	ID              int
	Name            string
	PrimaryMuscle   *string
	SecondaryMuscle *string
	EquipmentID     *int
	CaloriesPerMin  decimal.Decimal
}

// Muscle is the muscle group used when balancing a generated plan. Exercises
// without a recorded primary muscle fall into the catch-all group.
func (e *Exercise) Muscle() string {
	if e.PrimaryMuscle == nil || *e.PrimaryMuscle == "" {
		return "general"
	}
	return *e.PrimaryMuscle
}

type Equipment struct {
	ID   int
	Name string
}

type ExerciseFilters struct {
	PrimaryMuscle string
	Equipment     string
}

type ExerciseRepository interface {
	GetAll(ctx context.Context, filters ExerciseFilters) ([]*Exercise, error)
	GetById(ctx context.Context, id int) (*Exercise, error)
	GetByIds(ctx context.Context, ids []int) ([]*Exercise, error)

	// GetAvailable returns exercises usable with the given equipment names.
	// Bodyweight exercises (no equipment) are always included. An empty list
	// places no equipment restriction.
	GetAvailable(ctx context.Context, equipment []string) ([]*Exercise, error)
}
