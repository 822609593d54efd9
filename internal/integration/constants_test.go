package integration_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	TestUserEmail = "lifter@example.com"
	TestUserName  = "Test Lifter"
)

var (
	TestUserId    = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	TestWorkoutId = uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
)

// One exercise per major muscle group so generated plans are predictable.
var testExercises = []struct {
	id             int
	name           string
	primaryMuscle  string
	equipment      string
	caloriesPerMin float64
}{
	{1, "Bench Press", "chest", "barbell", 8},
	{2, "Deadlift", "back", "barbell", 9},
	{3, "Goblet Squat", "legs", "dumbbell", 9},
	{4, "Overhead Press", "shoulders", "barbell", 7},
	{5, "Bicep Curl", "arms", "dumbbell", 5},
}

func seedBaseData(t testing.TB, db *pgxpool.Pool) {
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
		TestUserId, TestUserEmail, TestUserName)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		`INSERT INTO equipment (id, name) VALUES (1, 'barbell'), (2, 'dumbbell') ON CONFLICT (id) DO NOTHING`)
	require.NoError(t, err)

	for _, e := range testExercises {
		equipmentId := 1
		if e.equipment == "dumbbell" {
			equipmentId = 2
		}

		_, err = db.Exec(ctx,
			`INSERT INTO exercises (id, name, primary_muscle, equipment_id, calories_per_min)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
			e.id, e.name, e.primaryMuscle, equipmentId, e.caloriesPerMin)
		require.NoError(t, err)
	}
}

func truncateWorkoutData(t testing.TB, db *pgxpool.Pool) {
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE exercise_sets RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE workout_logs CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE workout_exercises RESTART IDENTITY CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE workouts CASCADE")
	require.NoError(t, err)
	_, err = db.Exec(ctx, "TRUNCATE goals RESTART IDENTITY CASCADE")
	require.NoError(t, err)
}

func createWorkout(t testing.TB, db *pgxpool.Pool, workoutID, userID uuid.UUID, goal string, exerciseIds []int) {
	ctx := context.Background()

	_, err := db.Exec(ctx,
		`INSERT INTO workouts (id, user_id, goal) VALUES ($1, $2, $3)`,
		workoutID, userID, goal)
	require.NoError(t, err)

	for _, exerciseID := range exerciseIds {
		_, err = db.Exec(ctx,
			`INSERT INTO workout_exercises (workout_id, exercise_id, target_sets, target_reps, rest_seconds)
			 VALUES ($1, $2, 3, 10, 90)`,
			workoutID, exerciseID)
		require.NoError(t, err)
	}
}

func createWorkoutLog(t testing.TB, db *pgxpool.Pool, workoutID uuid.UUID, durationMinutes int) uuid.UUID {
	var logID uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO workout_logs (workout_id, duration_minutes) VALUES ($1, $2) RETURNING id`,
		workoutID, durationMinutes).Scan(&logID)
	require.NoError(t, err)

	return logID
}

func insertGoal(t testing.TB, db *pgxpool.Pool, userID uuid.UUID, goalType string, targetValue float64, daysAgo int) {
	_, err := db.Exec(context.Background(),
		`INSERT INTO goals (user_id, goal_type, target_value, created_at)
		 VALUES ($1, $2, $3, now() + make_interval(days => $4))`,
		userID, goalType, targetValue, daysAgo)
	require.NoError(t, err)
}

func createExerciseSet(t testing.TB, db *pgxpool.Pool, logID uuid.UUID, exerciseID, setNumber, reps int, weightKg float64) {
	_, err := db.Exec(context.Background(),
		`INSERT INTO exercise_sets (workout_log_id, exercise_id, set_number, reps, weight_kg)
		 VALUES ($1, $2, $3, $4, $5)`,
		logID, exerciseID, setNumber, reps, weightKg)
	require.NoError(t, err)
}
