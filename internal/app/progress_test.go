package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/fitplanpro/workout-backend/api"
	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/fitplanpro/workout-backend/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestGetProgressSummary(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		getByIdFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
		getSummaryFunc func(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ProgressSummary, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.ProgressSummaryResponse
	}{
		{
			name:        "successful retrieval",
			url:         "/progress?user_id=" + testUserId.String(),
			getByIdFunc: existingUser,
			getSummaryFunc: func(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ProgressSummary, error) {
				return &domain.ProgressSummary{
					TotalWorkouts:        4,
					TotalExercises:       3,
					TotalSets:            36,
					TotalReps:            320,
					TotalDurationMinutes: 180,
					Frequency: domain.WorkoutFrequency{
						Last7Days:  1,
						Last30Days: 4,
						Last90Days: 4,
					},
					ExerciseStats: []domain.ExerciseStats{
						{
							ExerciseID:   1,
							ExerciseName: "Bench Press",
							TotalSets:    12,
							TotalReps:    100,
							MaxWeightKg:  decimal.NewFromFloat(80),
							AvgWeightKg:  decimal.NewFromFloat(72.5),
						},
					},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ProgressSummaryResponse{
				UserId:               testUserId,
				TotalWorkouts:        4,
				TotalExercises:       3,
				TotalSets:            36,
				TotalReps:            320,
				TotalDurationMinutes: 180,
				// 180 minutes * 6.5 kcal/min
				EstimatedCaloriesBurned: 1170,
				WorkoutFrequency: api.WorkoutFrequency{
					Last7Days:  1,
					Last30Days: 4,
					Last90Days: 4,
				},
				ExerciseProgress: []api.ExerciseStats{
					{
						ExerciseId:   1,
						ExerciseName: "Bench Press",
						TotalSets:    12,
						TotalReps:    100,
						MaxWeightKg:  80,
						AvgWeightKg:  72.5,
					},
				},
			},
		},
		{
			name:        "custom window is passed to the repository",
			url:         fmt.Sprintf("/progress?user_id=%s&days=7", testUserId),
			getByIdFunc: existingUser,
			getSummaryFunc: func(ctx context.Context, userID uuid.UUID, since time.Time) (*domain.ProgressSummary, error) {
				if time.Since(since) > 8*24*time.Hour {
					return nil, fmt.Errorf("unexpected window start: %v", since)
				}
				return &domain.ProgressSummary{ExerciseStats: []domain.ExerciseStats{}}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ProgressSummaryResponse{
				UserId:           testUserId,
				ExerciseProgress: []api.ExerciseStats{},
			},
		},
		{
			name:           "days out of range",
			url:            fmt.Sprintf("/progress?user_id=%s&days=400", testUserId),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "days must be between 1 and 365",
		},
		{
			name:           "missing user id",
			url:            "/progress",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "missing user_id query parameter",
		},
		{
			name: "user not found",
			url:  "/progress?user_id=" + testUserId.String(),
			getByIdFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: fmt.Sprintf("User with ID %s not found", testUserId),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{GetByIdFunc: tt.getByIdFunc}
				a.progressRepo = &mocks.MockProgressRepo{GetSummaryFunc: tt.getSummaryFunc}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)

			app.GetProgressSummary(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetProgressSummary() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.ProgressSummaryResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetProgressSummary() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetExerciseProgress(t *testing.T) {
	day1 := time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 9, 18, 30, 0, 0, time.UTC)
	rpe := decimal.NewFromFloat(8)

	tests := []struct {
		name            string
		exerciseId      string
		url             string
		getByIdFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
		getExerciseFunc func(ctx context.Context, id int) (*domain.Exercise, error)
		getProgressFunc func(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]domain.ProgressionPoint, error)
		wantStatus      int
		wantErrMessage  string
		wantResponse    *api.ExerciseProgressResponse
	}{
		{
			name:        "successful retrieval with aggregates",
			exerciseId:  "1",
			url:         "/progress/exercise/1?user_id=" + testUserId.String(),
			getByIdFunc: existingUser,
			getExerciseFunc: func(ctx context.Context, id int) (*domain.Exercise, error) {
				return &domain.Exercise{ID: 1, Name: "Bench Press", PrimaryMuscle: ptr("chest")}, nil
			},
			getProgressFunc: func(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]domain.ProgressionPoint, error) {
				return []domain.ProgressionPoint{
					{Date: day1, SetNumber: 1, Reps: 10, WeightKg: decimal.NewFromFloat(60)},
					{Date: day1, SetNumber: 2, Reps: 8, WeightKg: decimal.NewFromFloat(65), RPE: &rpe},
					{Date: day2, SetNumber: 1, Reps: 10, WeightKg: decimal.NewFromFloat(70)},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ExerciseProgressResponse{
				ExerciseId:   1,
				ExerciseName: "Bench Press",
				TotalSets:    3,
				TotalReps:    28,
				MaxWeightKg:  70,
				AvgWeightKg:  65,
				Progression: []api.ProgressionPoint{
					{Date: day1, SetNumber: 1, Reps: 10, WeightKg: 60},
					{Date: day1, SetNumber: 2, Reps: 8, WeightKg: 65, Rpe: ptr(8.0)},
					{Date: day2, SetNumber: 1, Reps: 10, WeightKg: 70},
				},
			},
		},
		{
			name:        "bodyweight sets are excluded from weight averages",
			exerciseId:  "2",
			url:         "/progress/exercise/2?user_id=" + testUserId.String(),
			getByIdFunc: existingUser,
			getExerciseFunc: func(ctx context.Context, id int) (*domain.Exercise, error) {
				return &domain.Exercise{ID: 2, Name: "Pull Up", PrimaryMuscle: ptr("back")}, nil
			},
			getProgressFunc: func(ctx context.Context, userID uuid.UUID, exerciseID int, since time.Time) ([]domain.ProgressionPoint, error) {
				return []domain.ProgressionPoint{
					{Date: day1, SetNumber: 1, Reps: 12, WeightKg: decimal.Zero},
					{Date: day1, SetNumber: 2, Reps: 10, WeightKg: decimal.NewFromFloat(10)},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.ExerciseProgressResponse{
				ExerciseId:   2,
				ExerciseName: "Pull Up",
				TotalSets:    2,
				TotalReps:    22,
				MaxWeightKg:  10,
				AvgWeightKg:  10,
				Progression: []api.ProgressionPoint{
					{Date: day1, SetNumber: 1, Reps: 12, WeightKg: 0},
					{Date: day1, SetNumber: 2, Reps: 10, WeightKg: 10},
				},
			},
		},
		{
			name:        "exercise not found",
			exerciseId:  "99",
			url:         "/progress/exercise/99?user_id=" + testUserId.String(),
			getByIdFunc: existingUser,
			getExerciseFunc: func(ctx context.Context, id int) (*domain.Exercise, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "Exercise with ID 99 not found",
		},
		{
			name:           "days out of range",
			exerciseId:     "1",
			url:            fmt.Sprintf("/progress/exercise/1?user_id=%s&days=0", testUserId),
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "days must be between 1 and 365",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *Application) {
				a.userRepo = &mocks.MockUserRepo{GetByIdFunc: tt.getByIdFunc}
				a.exerciseRepo = &mocks.MockExerciseRepo{GetByIdFunc: tt.getExerciseFunc}
				a.progressRepo = &mocks.MockProgressRepo{GetExerciseProgressFunc: tt.getProgressFunc}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)
			r = withURLParams(r, map[string]string{"exerciseId": tt.exerciseId})

			app.GetExerciseProgress(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("GetExerciseProgress() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.ExerciseProgressResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("GetExerciseProgress() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
