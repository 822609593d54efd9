package validator

import (
	"fmt"
	"strings"

	"github.com/fitplanpro/workout-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("training_goal", validateTrainingGoal)

	return validator
}

func validateTrainingGoal(fl validator.FieldLevel) bool {
	goal := domain.TrainingGoal(strings.ToLower(fl.Field().String()))

	return goal.Valid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())
	case "training_goal":
		goals := make([]string, 0, len(domain.TrainingGoals()))
		for _, g := range domain.TrainingGoals() {
			goals = append(goals, string(g))
		}
		return fmt.Sprintf("must be one of: %s", strings.Join(goals, ", "))
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}
