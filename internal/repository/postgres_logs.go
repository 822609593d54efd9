package repository

import (
	"context"
	"errors"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresWorkoutLogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresWorkoutLogRepository(db *pgxpool.Pool) *PostgresWorkoutLogRepository {
	return &PostgresWorkoutLogRepository{
		db: db,
	}
}

func (p *PostgresWorkoutLogRepository) Create(ctx context.Context, log *domain.WorkoutLog) error {
	query := `
		INSERT INTO workout_logs (workout_id, duration_minutes)
		VALUES ($1, $2)
		RETURNING id, performed_at
	`

	return p.db.QueryRow(ctx, query, log.WorkoutID, log.DurationMinutes).Scan(&log.ID, &log.PerformedAt)
}

func (p *PostgresWorkoutLogRepository) GetLatestByWorkoutId(ctx context.Context, workoutID uuid.UUID) (*domain.WorkoutLog, error) {
	query := `
		SELECT id, workout_id, performed_at, COALESCE(duration_minutes, 0)
		FROM workout_logs
		WHERE workout_id = $1
		ORDER BY performed_at DESC
		LIMIT 1
	`

	var log domain.WorkoutLog

	err := p.db.QueryRow(ctx, query, workoutID).Scan(
		&log.ID,
		&log.WorkoutID,
		&log.PerformedAt,
		&log.DurationMinutes,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoWorkoutLog
		}
		return nil, err
	}

	return &log, nil
}

func (p *PostgresWorkoutLogRepository) GetAllByWorkoutId(ctx context.Context, workoutID uuid.UUID) ([]*domain.WorkoutLog, error) {
	query := `
		SELECT id, workout_id, performed_at, COALESCE(duration_minutes, 0)
		FROM workout_logs
		WHERE workout_id = $1
		ORDER BY performed_at DESC
	`

	rows, err := p.db.Query(ctx, query, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*domain.WorkoutLog{}
	byId := make(map[uuid.UUID]*domain.WorkoutLog)
	ids := []string{}

	for rows.Next() {
		var log domain.WorkoutLog

		err := rows.Scan(&log.ID, &log.WorkoutID, &log.PerformedAt, &log.DurationMinutes)
		if err != nil {
			return nil, err
		}

		log.Sets = []domain.ExerciseSet{}
		logs = append(logs, &log)
		byId[log.ID] = logs[len(logs)-1]
		ids = append(ids, log.ID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(logs) == 0 {
		return logs, nil
	}

	err = p.attachSets(ctx, byId, ids)
	if err != nil {
		return nil, err
	}

	return logs, nil
}

func (p *PostgresWorkoutLogRepository) attachSets(ctx context.Context, byId map[uuid.UUID]*domain.WorkoutLog, ids []string) error {
	query := `
		SELECT es.id, es.workout_log_id, es.exercise_id, ex.name,
			COALESCE(es.set_number, 0), COALESCE(es.reps, 0), COALESCE(es.weight_kg, 0), es.rpe
		FROM exercise_sets es
		JOIN exercises ex ON ex.id = es.exercise_id
		WHERE es.workout_log_id = ANY($1::uuid[])
		ORDER BY es.id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			set domain.ExerciseSet
			rpe decimal.NullDecimal
		)

		err := rows.Scan(
			&set.ID,
			&set.WorkoutLogID,
			&set.ExerciseID,
			&set.ExerciseName,
			&set.SetNumber,
			&set.Reps,
			&set.WeightKg,
			&rpe,
		)

		if err != nil {
			return err
		}

		if rpe.Valid {
			set.RPE = &rpe.Decimal
		}

		if log, ok := byId[set.WorkoutLogID]; ok {
			log.Sets = append(log.Sets, set)
		}
	}

	return rows.Err()
}

func (p *PostgresWorkoutLogRepository) CreateSets(ctx context.Context, sets []*domain.ExerciseSet) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO exercise_sets (workout_log_id, exercise_id, set_number, reps, weight_kg, rpe)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		for _, set := range sets {
			rpe := decimal.NullDecimal{}
			if set.RPE != nil {
				rpe = decimal.NewNullDecimal(*set.RPE)
			}

			err := tx.QueryRow(
				ctx,
				query,
				set.WorkoutLogID,
				set.ExerciseID,
				set.SetNumber,
				set.Reps,
				set.WeightKg,
				rpe,
			).Scan(&set.ID)

			if err != nil {
				return err
			}
		}

		return nil
	})
}
