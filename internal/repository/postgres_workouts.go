package repository

import (
	"context"
	"errors"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresWorkoutRepository struct {
	db *pgxpool.Pool
}

func NewPostgresWorkoutRepository(db *pgxpool.Pool) *PostgresWorkoutRepository {
	return &PostgresWorkoutRepository{
		db: db,
	}
}

func (p *PostgresWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO workouts (user_id, goal)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, workout.UserID, workout.Goal).Scan(&workout.ID, &workout.CreatedAt)
		if err != nil {
			return err
		}

		rows := make([][]any, 0, len(workout.Exercises))
		for _, exercise := range workout.Exercises {
			rows = append(rows, []any{
				workout.ID,
				exercise.ExerciseID,
				exercise.TargetSets,
				exercise.TargetReps,
				exercise.RestSeconds,
			})
		}

		_, err = tx.CopyFrom(
			ctx,
			pgx.Identifier{"workout_exercises"},
			[]string{"workout_id", "exercise_id", "target_sets", "target_reps", "rest_seconds"},
			pgx.CopyFromRows(rows),
		)

		return err
	})
}

func (p *PostgresWorkoutRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Workout, error) {
	query := `
		SELECT id, user_id, COALESCE(goal, ''), created_at
		FROM workouts
		WHERE id = $1
	`

	var workout domain.Workout

	err := p.db.QueryRow(ctx, query, id).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Goal,
		&workout.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}

	return &workout, nil
}

func (p *PostgresWorkoutRepository) HasExercise(ctx context.Context, workoutID uuid.UUID, exerciseID int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM workout_exercises
			WHERE workout_id = $1 AND exercise_id = $2
		)
	`

	var exists bool

	err := p.db.QueryRow(ctx, query, workoutID, exerciseID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresWorkoutRepository) GetHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.WorkoutHistory, error) {
	query := `
		SELECT id, user_id, COALESCE(goal, ''), created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := p.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []*domain.WorkoutHistory{}
	byId := make(map[uuid.UUID]*domain.WorkoutHistory)
	ids := []string{}

	for rows.Next() {
		var workout domain.Workout

		err := rows.Scan(&workout.ID, &workout.UserID, &workout.Goal, &workout.CreatedAt)
		if err != nil {
			return nil, err
		}

		entry := &domain.WorkoutHistory{Workout: workout}
		history = append(history, entry)
		byId[workout.ID] = entry
		ids = append(ids, workout.ID.String())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return history, nil
	}

	err = p.attachExercises(ctx, byId, ids)
	if err != nil {
		return nil, err
	}

	err = p.attachLogs(ctx, byId, ids)
	if err != nil {
		return nil, err
	}

	return history, nil
}

func (p *PostgresWorkoutRepository) attachExercises(ctx context.Context, byId map[uuid.UUID]*domain.WorkoutHistory, ids []string) error {
	query := `
		SELECT we.id, we.workout_id, we.exercise_id, ex.name,
			COALESCE(we.target_sets, 0), COALESCE(we.target_reps, 0), COALESCE(we.rest_seconds, 0)
		FROM workout_exercises we
		JOIN exercises ex ON ex.id = we.exercise_id
		WHERE we.workout_id = ANY($1::uuid[])
		ORDER BY we.id
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var we domain.WorkoutExercise

		err := rows.Scan(
			&we.ID,
			&we.WorkoutID,
			&we.ExerciseID,
			&we.ExerciseName,
			&we.TargetSets,
			&we.TargetReps,
			&we.RestSeconds,
		)

		if err != nil {
			return err
		}

		if entry, ok := byId[we.WorkoutID]; ok {
			entry.Workout.Exercises = append(entry.Workout.Exercises, we)
		}
	}

	return rows.Err()
}

func (p *PostgresWorkoutRepository) attachLogs(ctx context.Context, byId map[uuid.UUID]*domain.WorkoutHistory, ids []string) error {
	query := `
		SELECT id, workout_id, performed_at, COALESCE(duration_minutes, 0)
		FROM workout_logs
		WHERE workout_id = ANY($1::uuid[])
		ORDER BY performed_at DESC
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var log domain.WorkoutLog

		err := rows.Scan(&log.ID, &log.WorkoutID, &log.PerformedAt, &log.DurationMinutes)
		if err != nil {
			return err
		}

		if entry, ok := byId[log.WorkoutID]; ok {
			entry.Logs = append(entry.Logs, log)
		}
	}

	return rows.Err()
}
