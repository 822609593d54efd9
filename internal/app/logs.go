package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fitplanpro/workout-backend/api"
	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (app *Application) LogWorkout(w http.ResponseWriter, r *http.Request) {
	workoutID, err := app.readUUIDParam(r, "workoutId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.WorkoutLogRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if !app.workoutExists(w, r, workoutID) {
		return
	}

	log := &domain.WorkoutLog{
		WorkoutID:       workoutID,
		DurationMinutes: input.DurationMinutes,
	}

	err = app.logRepo.Create(r.Context(), log)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.WorkoutLogDetailResponse{
		LogId:           log.ID,
		WorkoutId:       log.WorkoutID,
		PerformedAt:     log.PerformedAt,
		DurationMinutes: log.DurationMinutes,
		ExerciseSets:    []api.ExerciseSetDetail{},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) LogExerciseSets(w http.ResponseWriter, r *http.Request) {
	workoutID, err := app.readUUIDParam(r, "workoutId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	exerciseID, err := app.readIntParam(r, "exerciseId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.ExerciseSetLogRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if !app.workoutExists(w, r, workoutID) {
		return
	}

	inWorkout, err := app.workoutRepo.HasExercise(r.Context(), workoutID, exerciseID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !inWorkout {
		message := fmt.Sprintf("Exercise %d is not part of workout %s", exerciseID, workoutID)
		app.errorResponse(w, r, http.StatusNotFound, message)
		return
	}

	if len(input.Sets) == 0 {
		app.badRequestResponse(w, r, errors.New("at least one set must be provided"))
		return
	}

	latest, err := app.logRepo.GetLatestByWorkoutId(r.Context(), workoutID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoWorkoutLog):
			message := "No active workout log found. Please log the workout session first using POST /workouts/{workoutId}/log"
			app.errorResponse(w, r, http.StatusBadRequest, message)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sets := make([]*domain.ExerciseSet, len(input.Sets))
	for i, set := range input.Sets {
		weight := decimal.Zero
		if set.WeightKg != nil {
			weight = decimal.NewFromFloat(*set.WeightKg)
		}

		var rpe *decimal.Decimal
		if set.Rpe != nil {
			v := decimal.NewFromFloat(*set.Rpe)
			rpe = &v
		}

		sets[i] = &domain.ExerciseSet{
			WorkoutLogID: latest.ID,
			ExerciseID:   exerciseID,
			SetNumber:    i + 1,
			Reps:         set.Reps,
			WeightKg:     weight,
			RPE:          rpe,
		}
	}

	err = app.logRepo.CreateSets(r.Context(), sets)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.ExerciseSetResponse, len(sets))
	for i, set := range sets {
		responses[i] = api.ExerciseSetResponse{
			Id:           set.ID,
			WorkoutLogId: set.WorkoutLogID,
			ExerciseId:   set.ExerciseID,
			SetNumber:    set.SetNumber,
			Reps:         set.Reps,
			WeightKg:     set.WeightKg.InexactFloat64(),
			Rpe:          decimalPtrToFloat(set.RPE),
		}
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetWorkoutLogs(w http.ResponseWriter, r *http.Request) {
	workoutID, err := app.readUUIDParam(r, "workoutId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.workoutExists(w, r, workoutID) {
		return
	}

	logs, err := app.logRepo.GetAllByWorkoutId(r.Context(), workoutID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.WorkoutLogDetailResponse, len(logs))
	for i, log := range logs {
		responses[i] = toWorkoutLogDetail(log)
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) workoutExists(w http.ResponseWriter, r *http.Request, workoutID uuid.UUID) bool {
	_, err := app.workoutRepo.GetById(r.Context(), workoutID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("Workout with ID %s not found", workoutID))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return false
	}

	return true
}

func toWorkoutLogDetail(log *domain.WorkoutLog) api.WorkoutLogDetailResponse {
	sets := make([]api.ExerciseSetDetail, len(log.Sets))
	for i, set := range log.Sets {
		sets[i] = api.ExerciseSetDetail{
			SetId:        set.ID,
			ExerciseId:   set.ExerciseID,
			ExerciseName: set.ExerciseName,
			SetNumber:    set.SetNumber,
			Reps:         set.Reps,
			WeightKg:     set.WeightKg.InexactFloat64(),
			Rpe:          decimalPtrToFloat(set.RPE),
		}
	}

	return api.WorkoutLogDetailResponse{
		LogId:           log.ID,
		WorkoutId:       log.WorkoutID,
		PerformedAt:     log.PerformedAt,
		DurationMinutes: log.DurationMinutes,
		ExerciseSets:    sets,
	}
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}
