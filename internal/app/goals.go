package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fitplanpro/workout-backend/api"
	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var input api.GoalRequest

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

	goal := &domain.Goal{
		UserID:      input.UserId,
		GoalType:    input.GoalType,
		TargetValue: decimal.NewFromFloat(input.TargetValue),
	}

	err = app.goalRepo.Create(r.Context(), goal)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("User with ID %s not found", input.UserId))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toGoalResponse(goal), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGoals(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readUUIDQuery(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.userExists(w, r, userID) {
		return
	}

	goals, err := app.goalRepo.GetAllByUserId(r.Context(), userID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	responses := make([]api.GoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = toGoalResponse(goal)
	}

	err = app.writeJSON(w, http.StatusOK, responses, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toGoalResponse(goal *domain.Goal) api.GoalResponse {
	return api.GoalResponse{
		Id:          goal.ID,
		UserId:      goal.UserID,
		GoalType:    goal.GoalType,
		TargetValue: goal.TargetValue.InexactFloat64(),
		CreatedAt:   goal.CreatedAt,
	}
}
