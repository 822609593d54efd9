package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("workout-backend", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", app.GetHealth)

	r.Route("/exercises", func(r chi.Router) {
		r.Get("/", app.GetExercises)
		r.Get("/{exerciseId}", app.GetExerciseById)
	})

	r.Route("/workouts", func(r chi.Router) {
		r.Post("/generate", app.GenerateWorkout)
		r.Post("/custom", app.CreateCustomWorkout)
		r.Get("/history", app.GetWorkoutHistory)

		r.Route("/{workoutId}", func(r chi.Router) {
			r.Post("/log", app.LogWorkout)
			r.Get("/logs", app.GetWorkoutLogs)
			r.Post("/exercises/{exerciseId}/log", app.LogExerciseSets)
		})
	})

	r.Route("/progress", func(r chi.Router) {
		r.Get("/", app.GetProgressSummary)
		r.Get("/exercise/{exerciseId}", app.GetExerciseProgress)
	})

	r.Route("/goals", func(r chi.Router) {
		r.Post("/", app.CreateGoal)
		r.Get("/", app.GetGoals)
	})

	return r
}
