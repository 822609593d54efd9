package app

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/fitplanpro/workout-backend/api"
	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultSummaryDays  = 30
	DefaultProgressDays = 90
	MaxProgressDays     = 365

	// Rough burn rate applied to logged minutes, matching the summary's
	// "average of 5-8 calories per minute" estimate.
	caloriesPerMinute = 6.5
)

func (app *Application) GetProgressSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := app.readUUIDQuery(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	days, err := app.readIntQuery(r, "days", DefaultSummaryDays)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if days < 1 || days > MaxProgressDays {
		app.badRequestResponse(w, r, fmt.Errorf("days must be between 1 and %d", MaxProgressDays))
		return
	}

	if !app.userExists(w, r, userID) {
		return
	}

	since := time.Now().AddDate(0, 0, -days)

	summary, err := app.progressRepo.GetSummary(r.Context(), userID, since)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	stats := make([]api.ExerciseStats, len(summary.ExerciseStats))
	for i, s := range summary.ExerciseStats {
		stats[i] = api.ExerciseStats{
			ExerciseId:   s.ExerciseID,
			ExerciseName: s.ExerciseName,
			TotalSets:    s.TotalSets,
			TotalReps:    s.TotalReps,
			MaxWeightKg:  s.MaxWeightKg.InexactFloat64(),
			AvgWeightKg:  s.AvgWeightKg.InexactFloat64(),
		}
	}

	calories := float64(summary.TotalDurationMinutes) * caloriesPerMinute

	resp := api.ProgressSummaryResponse{
		UserId:                  userID,
		TotalWorkouts:           summary.TotalWorkouts,
		TotalExercises:          summary.TotalExercises,
		TotalSets:               summary.TotalSets,
		TotalReps:               summary.TotalReps,
		TotalDurationMinutes:    summary.TotalDurationMinutes,
		EstimatedCaloriesBurned: math.Round(calories*100) / 100,
		WorkoutFrequency: api.WorkoutFrequency{
			Last7Days:  summary.Frequency.Last7Days,
			Last30Days: summary.Frequency.Last30Days,
			Last90Days: summary.Frequency.Last90Days,
		},
		ExerciseProgress: stats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetExerciseProgress(w http.ResponseWriter, r *http.Request) {
	exerciseID, err := app.readIntParam(r, "exerciseId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID, err := app.readUUIDQuery(r, "user_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	days, err := app.readIntQuery(r, "days", DefaultProgressDays)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if days < 1 || days > MaxProgressDays {
		app.badRequestResponse(w, r, fmt.Errorf("days must be between 1 and %d", MaxProgressDays))
		return
	}

	if !app.userExists(w, r, userID) {
		return
	}

	exercise, err := app.exerciseRepo.GetById(r.Context(), exerciseID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("Exercise with ID %d not found", exerciseID))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	since := time.Now().AddDate(0, 0, -days)

	points, err := app.progressRepo.GetExerciseProgress(r.Context(), userID, exerciseID, since)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := buildExerciseProgress(exercise, points)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func buildExerciseProgress(exercise *domain.Exercise, points []domain.ProgressionPoint) api.ExerciseProgressResponse {
	resp := api.ExerciseProgressResponse{
		ExerciseId:   exercise.ID,
		ExerciseName: exercise.Name,
		Progression:  make([]api.ProgressionPoint, len(points)),
	}

	totalWeight := decimal.Zero
	maxWeight := decimal.Zero
	weighted := 0

	for i, point := range points {
		resp.TotalSets++
		resp.TotalReps += point.Reps

		if !point.WeightKg.IsZero() {
			totalWeight = totalWeight.Add(point.WeightKg)
			weighted++
			if point.WeightKg.GreaterThan(maxWeight) {
				maxWeight = point.WeightKg
			}
		}

		resp.Progression[i] = api.ProgressionPoint{
			Date:      point.Date,
			Reps:      point.Reps,
			WeightKg:  point.WeightKg.InexactFloat64(),
			Rpe:       decimalPtrToFloat(point.RPE),
			SetNumber: point.SetNumber,
		}
	}

	resp.MaxWeightKg = maxWeight.InexactFloat64()
	if weighted > 0 {
		avg := totalWeight.Div(decimal.NewFromInt(int64(weighted)))
		resp.AvgWeightKg = avg.Round(2).InexactFloat64()
	}

	return resp
}
