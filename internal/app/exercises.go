package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fitplanpro/workout-backend/api"
	"github.com/fitplanpro/workout-backend/internal/domain"
)

func (app *Application) GetExercises(w http.ResponseWriter, r *http.Request) {
	filters := domain.ExerciseFilters{
		PrimaryMuscle: r.URL.Query().Get("primary_muscle"),
		Equipment:     r.URL.Query().Get("equipment"),
	}

	exercises, err := app.exerciseRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toExerciseResponses(exercises), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetExerciseById(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIntParam(r, "exerciseId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	exercise, err := app.exerciseRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("Exercise with ID %d not found", id))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toExerciseResponse(exercise), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toExerciseResponses(exercises []*domain.Exercise) []api.ExerciseResponse {
	responses := make([]api.ExerciseResponse, len(exercises))
	for i, exercise := range exercises {
		responses[i] = toExerciseResponse(exercise)
	}
	return responses
}

func toExerciseResponse(exercise *domain.Exercise) api.ExerciseResponse {
	calories := exercise.CaloriesPerMin.InexactFloat64()

	return api.ExerciseResponse{
		Id:              exercise.ID,
		Name:            exercise.Name,
		PrimaryMuscle:   exercise.PrimaryMuscle,
		SecondaryMuscle: exercise.SecondaryMuscle,
		EquipmentId:     exercise.EquipmentID,
		CaloriesPerMin:  &calories,
	}
}
