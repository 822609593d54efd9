package repository

import (
	"context"
	"errors"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresExerciseRepository struct {
	db *pgxpool.Pool
}

func NewPostgresExerciseRepository(db *pgxpool.Pool) *PostgresExerciseRepository {
	return &PostgresExerciseRepository{
		db: db,
	}
}

func (p *PostgresExerciseRepository) GetAll(ctx context.Context, filters domain.ExerciseFilters) ([]*domain.Exercise, error) {
	query := `
		SELECT ex.id, ex.name, ex.primary_muscle, ex.secondary_muscle, ex.equipment_id, COALESCE(ex.calories_per_min, 5.00)
		FROM exercises ex
		LEFT JOIN equipment eq ON eq.id = ex.equipment_id
		WHERE ($1 = '' OR ex.primary_muscle ILIKE '%' || $1 || '%')
			AND ($2 = '' OR eq.name ILIKE '%' || $2 || '%')
		ORDER BY ex.name
	`

	rows, err := p.db.Query(ctx, query, filters.PrimaryMuscle, filters.Equipment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

func (p *PostgresExerciseRepository) GetById(ctx context.Context, id int) (*domain.Exercise, error) {
	query := `
		SELECT id, name, primary_muscle, secondary_muscle, equipment_id, COALESCE(calories_per_min, 5.00)
		FROM exercises
		WHERE id = $1
	`

	var exercise domain.Exercise

	err := p.db.QueryRow(ctx, query, id).Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.PrimaryMuscle,
		&exercise.SecondaryMuscle,
		&exercise.EquipmentID,
		&exercise.CaloriesPerMin,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &exercise, nil
}

func (p *PostgresExerciseRepository) GetByIds(ctx context.Context, ids []int) ([]*domain.Exercise, error) {
	query := `
		SELECT id, name, primary_muscle, secondary_muscle, equipment_id, COALESCE(calories_per_min, 5.00)
		FROM exercises
		WHERE id = ANY($1)
		ORDER BY name
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

func (p *PostgresExerciseRepository) GetAvailable(ctx context.Context, equipment []string) ([]*domain.Exercise, error) {
	// Bodyweight exercises have no equipment reference and always qualify.
	query := `
		SELECT ex.id, ex.name, ex.primary_muscle, ex.secondary_muscle, ex.equipment_id, COALESCE(ex.calories_per_min, 5.00)
		FROM exercises ex
		LEFT JOIN equipment eq ON eq.id = ex.equipment_id
		WHERE cardinality($1::text[]) = 0
			OR ex.equipment_id IS NULL
			OR eq.name = ANY($1)
		ORDER BY ex.name
	`

	if equipment == nil {
		equipment = []string{}
	}

	rows, err := p.db.Query(ctx, query, equipment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

func scanExercises(rows pgx.Rows) ([]*domain.Exercise, error) {
	exercises := []*domain.Exercise{}

	for rows.Next() {
		var exercise domain.Exercise

		err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.PrimaryMuscle,
			&exercise.SecondaryMuscle,
			&exercise.EquipmentID,
			&exercise.CaloriesPerMin,
		)

		if err != nil {
			return nil, err
		}

		exercises = append(exercises, &exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}
