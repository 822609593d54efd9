package app

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/fitplanpro/workout-backend/api"
	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
)

const (
	DefaultDurationMinutes = 45
	DefaultHistoryLimit    = 20
	DefaultTargetSets      = 3
	DefaultTargetReps      = 10
	DefaultRestSeconds     = 90
)

// Major muscle groups a generated plan should cover before anything else.
var majorMuscleGroups = []string{"chest", "back", "legs", "shoulders", "arms"}

func (app *Application) GenerateWorkout(w http.ResponseWriter, r *http.Request) {
	var input api.WorkoutGenerateRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	goal := domain.TrainingGoal(strings.ToLower(input.Goal))
	if !goal.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("invalid goal, must be one of: %s", trainingGoalList()))
		return
	}

	if !app.userExists(w, r, input.UserId) {
		return
	}

	exercises, err := app.exerciseRepo.GetAvailable(r.Context(), input.Equipment)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(exercises) == 0 {
		app.badRequestResponse(w, r, domain.ErrNoExercisesAvailable)
		return
	}

	duration := DefaultDurationMinutes
	if input.DurationMinutes != nil {
		duration = *input.DurationMinutes
	}

	selected := selectExercises(exercises, duration)
	scheme := goal.SetScheme()

	workout := &domain.Workout{
		UserID:    input.UserId,
		Goal:      string(goal),
		Exercises: make([]domain.WorkoutExercise, len(selected)),
	}

	for i, exercise := range selected {
		workout.Exercises[i] = domain.WorkoutExercise{
			ExerciseID:    exercise.ID,
			ExerciseName:  exercise.Name,
			PrimaryMuscle: exercise.Muscle(),
			TargetSets:    scheme.Sets,
			TargetReps:    scheme.Reps,
			RestSeconds:   scheme.RestSeconds,
		}
	}

	err = app.workoutRepo.Create(r.Context(), workout)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.WorkoutGenerateResponse{
		WorkoutId:         workout.ID,
		Goal:              workout.Goal,
		Exercises:         toWorkoutExerciseDetails(selected, workout.Exercises),
		EstimatedDuration: len(selected) * scheme.EstimatedSeconds() / 60,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateCustomWorkout(w http.ResponseWriter, r *http.Request) {
	var input api.CustomWorkoutRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if !app.userExists(w, r, input.UserId) {
		return
	}

	if len(input.Exercises) == 0 {
		app.badRequestResponse(w, r, errors.New("at least one exercise must be provided"))
		return
	}

	ids := make([]int, len(input.Exercises))
	for i, exercise := range input.Exercises {
		ids[i] = exercise.ExerciseId
	}

	exercises, err := app.exerciseRepo.GetByIds(r.Context(), ids)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	byId := make(map[int]*domain.Exercise, len(exercises))
	for _, exercise := range exercises {
		byId[exercise.ID] = exercise
	}

	for _, id := range ids {
		if _, ok := byId[id]; !ok {
			app.errorResponse(w, r, http.StatusNotFound, "One or more exercises not found")
			return
		}
	}

	workout := &domain.Workout{
		UserID:    input.UserId,
		Goal:      input.Goal,
		Exercises: make([]domain.WorkoutExercise, len(input.Exercises)),
	}

	for i, spec := range input.Exercises {
		exercise := byId[spec.ExerciseId]

		workout.Exercises[i] = domain.WorkoutExercise{
			ExerciseID:    exercise.ID,
			ExerciseName:  exercise.Name,
			PrimaryMuscle: exercise.Muscle(),
			TargetSets:    valueOr(spec.TargetSets, DefaultTargetSets),
			TargetReps:    valueOr(spec.TargetReps, DefaultTargetReps),
			RestSeconds:   valueOr(spec.RestSeconds, DefaultRestSeconds),
		}
	}

	err = app.workoutRepo.Create(r.Context(), workout)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	estimated := 0
	details := make([]api.WorkoutExerciseDetail, len(workout.Exercises))
	for i, we := range workout.Exercises {
		exercise := byId[we.ExerciseID]
		details[i] = api.WorkoutExerciseDetail{
			ExerciseId:    we.ExerciseID,
			ExerciseName:  we.ExerciseName,
			PrimaryMuscle: exercise.PrimaryMuscle,
			TargetSets:    we.TargetSets,
			TargetReps:    we.TargetReps,
			RestSeconds:   we.RestSeconds,
		}
		estimated += we.TargetSets * (we.TargetReps*3 + we.RestSeconds)
	}

	resp := api.WorkoutGenerateResponse{
		WorkoutId:         workout.ID,
		Goal:              workout.Goal,
		Exercises:         details,
		EstimatedDuration: estimated / 60,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetWorkoutHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readUUIDQuery(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	limit, err := app.readIntQuery(r, "limit", DefaultHistoryLimit)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.userExists(w, r, userID) {
		return
	}

	history, err := app.workoutRepo.GetHistory(r.Context(), userID, limit)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	entries := make([]api.WorkoutHistoryEntry, len(history))
	for i, item := range history {
		entries[i] = toWorkoutHistoryEntry(item)
	}

	err = app.writeJSON(w, http.StatusOK, entries, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// selectExercises builds a balanced plan: one or two exercises per major
// muscle group, topped up at random until the plan is long enough for the
// requested duration (one exercise per ten minutes, at least five).
func selectExercises(exercises []*domain.Exercise, durationMinutes int) []*domain.Exercise {
	groups := make(map[string][]*domain.Exercise)
	for _, exercise := range exercises {
		muscle := exercise.Muscle()
		groups[muscle] = append(groups[muscle], exercise)
	}

	perGroup := 2
	if len(groups) > 5 {
		perGroup = 1
	}

	selected := make([]*domain.Exercise, 0, len(exercises))
	picked := make(map[int]bool)

	for _, muscle := range majorMuscleGroups {
		candidates := groups[muscle]
		if len(candidates) == 0 {
			continue
		}

		for _, exercise := range sample(candidates, perGroup) {
			selected = append(selected, exercise)
			picked[exercise.ID] = true
		}
	}

	target := max(5, durationMinutes/10)
	if len(selected) < target {
		remaining := make([]*domain.Exercise, 0, len(exercises))
		for _, exercise := range exercises {
			if !picked[exercise.ID] {
				remaining = append(remaining, exercise)
			}
		}

		selected = append(selected, sample(remaining, target-len(selected))...)
	}

	return selected
}

func sample(exercises []*domain.Exercise, n int) []*domain.Exercise {
	if n >= len(exercises) {
		return exercises
	}

	shuffled := make([]*domain.Exercise, len(exercises))
	copy(shuffled, exercises)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled[:n]
}

func (app *Application) userExists(w http.ResponseWriter, r *http.Request, userID uuid.UUID) bool {
	_, err := app.userRepo.GetById(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", userID))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return false
	}

	return true
}

func toWorkoutExerciseDetails(selected []*domain.Exercise, planned []domain.WorkoutExercise) []api.WorkoutExerciseDetail {
	details := make([]api.WorkoutExerciseDetail, len(planned))
	for i, we := range planned {
		details[i] = api.WorkoutExerciseDetail{
			ExerciseId:    we.ExerciseID,
			ExerciseName:  we.ExerciseName,
			PrimaryMuscle: selected[i].PrimaryMuscle,
			TargetSets:    we.TargetSets,
			TargetReps:    we.TargetReps,
			RestSeconds:   we.RestSeconds,
		}
	}
	return details
}

func toWorkoutHistoryEntry(item *domain.WorkoutHistory) api.WorkoutHistoryEntry {
	exercises := make([]api.WorkoutHistoryExercise, len(item.Workout.Exercises))
	for i, we := range item.Workout.Exercises {
		exercises[i] = api.WorkoutHistoryExercise{
			ExerciseId:   we.ExerciseID,
			ExerciseName: we.ExerciseName,
			TargetSets:   we.TargetSets,
			TargetReps:   we.TargetReps,
		}
	}

	logs := make([]api.WorkoutLogSummary, len(item.Logs))
	for i, log := range item.Logs {
		logs[i] = api.WorkoutLogSummary{
			LogId:           log.ID,
			PerformedAt:     log.PerformedAt,
			DurationMinutes: log.DurationMinutes,
		}
	}

	return api.WorkoutHistoryEntry{
		WorkoutId:      item.Workout.ID,
		Goal:           item.Workout.Goal,
		CreatedAt:      item.Workout.CreatedAt,
		ExerciseCount:  len(exercises),
		Exercises:      exercises,
		Logs:           logs,
		TimesCompleted: len(logs),
	}
}

func trainingGoalList() string {
	goals := domain.TrainingGoals()
	names := make([]string, len(goals))
	for i, g := range goals {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}

func valueOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
