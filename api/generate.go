package api

//go:generate go run github.com/fitplanpro/workout-backend/cmd/generate-openapi
