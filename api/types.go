// Package api holds the wire types of the FitPlan Pro HTTP API and the
// builder for its OpenAPI document.
package api

import (
	"time"

	"github.com/google/uuid"
)

type HealthcheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"request_id"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validation_errors"`
}

type ExerciseResponse struct {
	Id              int      `json:"id"`
	Name            string   `json:"name"`
	PrimaryMuscle   *string  `json:"primary_muscle"`
	SecondaryMuscle *string  `json:"secondary_muscle"`
	EquipmentId     *int     `json:"equipment_id"`
	CaloriesPerMin  *float64 `json:"calories_per_min"`
}

type WorkoutGenerateRequest struct {
	UserId          uuid.UUID `json:"user_id" validate:"required"`
	Goal            string    `json:"goal" validate:"required"`
	Equipment       []string  `json:"equipment,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty" validate:"omitempty,gte=1"`
}

type WorkoutExerciseDetail struct {
	ExerciseId    int     `json:"exercise_id"`
	ExerciseName  string  `json:"exercise_name"`
	PrimaryMuscle *string `json:"primary_muscle"`
	TargetSets    int     `json:"target_sets"`
	TargetReps    int     `json:"target_reps"`
	RestSeconds   int     `json:"rest_seconds"`
}

type WorkoutGenerateResponse struct {
	WorkoutId         uuid.UUID               `json:"workout_id"`
	Goal              string                  `json:"goal"`
	Exercises         []WorkoutExerciseDetail `json:"exercises"`
	EstimatedDuration int                     `json:"estimated_duration"`
}

type CustomWorkoutExercise struct {
	ExerciseId  int  `json:"exercise_id" validate:"required"`
	TargetSets  *int `json:"target_sets,omitempty" validate:"omitempty,gte=1"`
	TargetReps  *int `json:"target_reps,omitempty" validate:"omitempty,gte=1"`
	RestSeconds *int `json:"rest_seconds,omitempty" validate:"omitempty,gte=0"`
}

type CustomWorkoutRequest struct {
	UserId    uuid.UUID               `json:"user_id" validate:"required"`
	Goal      string                  `json:"goal" validate:"required"`
	Exercises []CustomWorkoutExercise `json:"exercises" validate:"dive"`
}

type WorkoutHistoryExercise struct {
	ExerciseId   int    `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	TargetSets   int    `json:"target_sets"`
	TargetReps   int    `json:"target_reps"`
}

type WorkoutLogSummary struct {
	LogId           uuid.UUID `json:"log_id"`
	PerformedAt     time.Time `json:"performed_at"`
	DurationMinutes int       `json:"duration_minutes"`
}

type WorkoutHistoryEntry struct {
	WorkoutId      uuid.UUID                `json:"workout_id"`
	Goal           string                   `json:"goal"`
	CreatedAt      time.Time                `json:"created_at"`
	ExerciseCount  int                      `json:"exercise_count"`
	Exercises      []WorkoutHistoryExercise `json:"exercises"`
	Logs           []WorkoutLogSummary      `json:"logs"`
	TimesCompleted int                      `json:"times_completed"`
}

type WorkoutLogRequest struct {
	DurationMinutes int `json:"duration_minutes" validate:"required,gte=1"`
}

type ExerciseSetDetail struct {
	SetId        int      `json:"set_id"`
	ExerciseId   int      `json:"exercise_id"`
	ExerciseName string   `json:"exercise_name"`
	SetNumber    int      `json:"set_number"`
	Reps         int      `json:"reps"`
	WeightKg     float64  `json:"weight_kg"`
	Rpe          *float64 `json:"rpe"`
}

type WorkoutLogDetailResponse struct {
	LogId           uuid.UUID           `json:"log_id"`
	WorkoutId       uuid.UUID           `json:"workout_id"`
	PerformedAt     time.Time           `json:"performed_at"`
	DurationMinutes int                 `json:"duration_minutes"`
	ExerciseSets    []ExerciseSetDetail `json:"exercise_sets"`
}

type ExerciseSetCreate struct {
	Reps     int      `json:"reps" validate:"required,gte=1"`
	WeightKg *float64 `json:"weight_kg,omitempty" validate:"omitempty,gte=0"`
	Rpe      *float64 `json:"rpe,omitempty" validate:"omitempty,gte=1,lte=10"`
}

type ExerciseSetLogRequest struct {
	Sets []ExerciseSetCreate `json:"sets" validate:"dive"`
}

type ExerciseSetResponse struct {
	Id           int       `json:"id"`
	WorkoutLogId uuid.UUID `json:"workout_log_id"`
	ExerciseId   int       `json:"exercise_id"`
	SetNumber    int       `json:"set_number"`
	Reps         int       `json:"reps"`
	WeightKg     float64   `json:"weight_kg"`
	Rpe          *float64  `json:"rpe"`
}

type WorkoutFrequency struct {
	Last7Days  int `json:"last_7_days"`
	Last30Days int `json:"last_30_days"`
	Last90Days int `json:"last_90_days"`
}

type ExerciseStats struct {
	ExerciseId   int     `json:"exercise_id"`
	ExerciseName string  `json:"exercise_name"`
	TotalSets    int     `json:"total_sets"`
	TotalReps    int     `json:"total_reps"`
	MaxWeightKg  float64 `json:"max_weight_kg"`
	AvgWeightKg  float64 `json:"avg_weight_kg"`
}

type ProgressSummaryResponse struct {
	UserId                  uuid.UUID        `json:"user_id"`
	TotalWorkouts           int              `json:"total_workouts"`
	TotalExercises          int              `json:"total_exercises"`
	TotalSets               int              `json:"total_sets"`
	TotalReps               int              `json:"total_reps"`
	TotalDurationMinutes    int              `json:"total_duration_minutes"`
	EstimatedCaloriesBurned float64          `json:"estimated_calories_burned"`
	WorkoutFrequency        WorkoutFrequency `json:"workout_frequency"`
	ExerciseProgress        []ExerciseStats  `json:"exercise_progress"`
}

type ProgressionPoint struct {
	Date      time.Time `json:"date"`
	Reps      int       `json:"reps"`
	WeightKg  float64   `json:"weight_kg"`
	Rpe       *float64  `json:"rpe"`
	SetNumber int       `json:"set_number"`
}

type ExerciseProgressResponse struct {
	ExerciseId   int                `json:"exercise_id"`
	ExerciseName string             `json:"exercise_name"`
	TotalSets    int                `json:"total_sets"`
	TotalReps    int                `json:"total_reps"`
	MaxWeightKg  float64            `json:"max_weight_kg"`
	AvgWeightKg  float64            `json:"avg_weight_kg"`
	Progression  []ProgressionPoint `json:"progression"`
}

type GoalRequest struct {
	UserId      uuid.UUID `json:"user_id" validate:"required"`
	GoalType    string    `json:"goal_type" validate:"required"`
	TargetValue float64   `json:"target_value" validate:"required,gt=0"`
}

type GoalResponse struct {
	Id          int       `json:"id"`
	UserId      uuid.UUID `json:"user_id"`
	GoalType    string    `json:"goal_type"`
	TargetValue float64   `json:"target_value"`
	CreatedAt   time.Time `json:"created_at"`
}
