package repository

import (
	"context"
	"time"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresProgressRepository struct {
	db *pgxpool.Pool
}

func NewPostgresProgressRepository(db *pgxpool.Pool) *PostgresProgressRepository {
	return &PostgresProgressRepository{
		db: db,
	}
}

func (p *PostgresProgressRepository) GetSummary(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ProgressSummary, error) {
	summary := &domain.ProgressSummary{
		ExerciseStats: []domain.ExerciseStats{},
	}

	logTotalsQuery := `
		SELECT COUNT(*), COALESCE(SUM(wl.duration_minutes), 0)
		FROM workout_logs wl
		JOIN workouts w ON w.id = wl.workout_id
		WHERE w.user_id = $1 AND wl.performed_at >= $2
	`

	err := p.db.QueryRow(ctx, logTotalsQuery, userID, since).Scan(
		&summary.TotalWorkouts,
		&summary.TotalDurationMinutes,
	)
	if err != nil {
		return nil, err
	}

	setTotalsQuery := `
		SELECT COUNT(DISTINCT es.exercise_id), COUNT(es.id), COALESCE(SUM(es.reps), 0)
		FROM exercise_sets es
		JOIN workout_logs wl ON wl.id = es.workout_log_id
		JOIN workouts w ON w.id = wl.workout_id
		WHERE w.user_id = $1 AND wl.performed_at >= $2
	`

	err = p.db.QueryRow(ctx, setTotalsQuery, userID, since).Scan(
		&summary.TotalExercises,
		&summary.TotalSets,
		&summary.TotalReps,
	)
	if err != nil {
		return nil, err
	}

	frequencyQuery := `
		SELECT
			COUNT(*) FILTER (WHERE wl.performed_at >= now() - interval '7 days'),
			COUNT(*) FILTER (WHERE wl.performed_at >= now() - interval '30 days'),
			COUNT(*) FILTER (WHERE wl.performed_at >= now() - interval '90 days')
		FROM workout_logs wl
		JOIN workouts w ON w.id = wl.workout_id
		WHERE w.user_id = $1
	`

	err = p.db.QueryRow(ctx, frequencyQuery, userID).Scan(
		&summary.Frequency.Last7Days,
		&summary.Frequency.Last30Days,
		&summary.Frequency.Last90Days,
	)
	if err != nil {
		return nil, err
	}

	statsQuery := `
		SELECT es.exercise_id, ex.name, COUNT(es.id), COALESCE(SUM(es.reps), 0),
			COALESCE(MAX(es.weight_kg), 0),
			COALESCE(AVG(es.weight_kg) FILTER (WHERE es.weight_kg IS NOT NULL AND es.weight_kg <> 0), 0)
		FROM exercise_sets es
		JOIN exercises ex ON ex.id = es.exercise_id
		JOIN workout_logs wl ON wl.id = es.workout_log_id
		JOIN workouts w ON w.id = wl.workout_id
		WHERE w.user_id = $1 AND wl.performed_at >= $2
		GROUP BY es.exercise_id, ex.name
		ORDER BY COUNT(es.id) DESC, ex.name
	`

	rows, err := p.db.Query(ctx, statsQuery, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stats domain.ExerciseStats

		err := rows.Scan(
			&stats.ExerciseID,
			&stats.ExerciseName,
			&stats.TotalSets,
			&stats.TotalReps,
			&stats.MaxWeightKg,
			&stats.AvgWeightKg,
		)
		if err != nil {
			return nil, err
		}

		summary.ExerciseStats = append(summary.ExerciseStats, stats)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

func (p *PostgresProgressRepository) GetExerciseProgress(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]domain.ProgressionPoint, error) {
	query := `
		SELECT wl.performed_at, COALESCE(es.set_number, 0), COALESCE(es.reps, 0),
			COALESCE(es.weight_kg, 0), es.rpe
		FROM exercise_sets es
		JOIN workout_logs wl ON wl.id = es.workout_log_id
		JOIN workouts w ON w.id = wl.workout_id
		WHERE w.user_id = $1 AND es.exercise_id = $2 AND wl.performed_at >= $3
		ORDER BY wl.performed_at, es.set_number
	`

	rows, err := p.db.Query(ctx, query, userID, exerciseID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []domain.ProgressionPoint{}

	for rows.Next() {
		var (
			point domain.ProgressionPoint
			rpe   decimal.NullDecimal
		)

		err := rows.Scan(&point.Date, &point.SetNumber, &point.Reps, &point.WeightKg, &rpe)
		if err != nil {
			return nil, err
		}

		if rpe.Valid {
			point.RPE = &rpe.Decimal
		}

		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}
