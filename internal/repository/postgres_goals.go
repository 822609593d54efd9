package repository

import (
	"context"
	"errors"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresGoalRepository struct {
	db *pgxpool.Pool
}

func NewPostgresGoalRepository(db *pgxpool.Pool) *PostgresGoalRepository {
	return &PostgresGoalRepository{
		db: db,
	}
}

func (p *PostgresGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query := `
		INSERT INTO goals (user_id, goal_type, target_value)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(ctx, query, goal.UserID, goal.GoalType, goal.TargetValue).Scan(&goal.ID, &goal.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}
		return err
	}

	return nil
}

func (p *PostgresGoalRepository) GetAllByUserId(ctx context.Context, userID uuid.UUID) ([]*domain.Goal, error) {
	query := `
		SELECT id, user_id, COALESCE(goal_type, ''), COALESCE(target_value, 0), created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []*domain.Goal{}

	for rows.Next() {
		var goal domain.Goal

		err := rows.Scan(&goal.ID, &goal.UserID, &goal.GoalType, &goal.TargetValue, &goal.CreatedAt)
		if err != nil {
			return nil, err
		}

		goals = append(goals, &goal)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}
