package domain

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrExerciseNotInWorkout = errors.New("exercise is not part of the workout")
	ErrNoWorkoutLog         = errors.New("no workout log found for the workout")
	ErrNoExercisesAvailable = errors.New("no exercises found matching the equipment criteria")
)
