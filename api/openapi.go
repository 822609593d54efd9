package api

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/google/uuid"
)

// DocumentPath is where the generated OpenAPI document lives, relative to
// the repository root.
const DocumentPath = "interfaces/openapi.json"

const apiDescription = "Backend API for FitPlan Pro workout management application. " +
	"Provides endpoints for workout generation, exercise management, " +
	"workout logging, progress tracking, and user goal management."

// NewDocument builds the OpenAPI 3.0 document describing the FitPlan Pro API
// from the wire types in this package.
func NewDocument() (*openapi3.T, error) {
	schemas, err := componentSchemas()
	if err != nil {
		return nil, fmt.Errorf("generating component schemas: %w", err)
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "FitPlan Pro API",
			Description: apiDescription,
			Version:     "1.0.0",
		},
		Tags: openapi3.Tags{
			{Name: "health", Description: "Health check and status endpoints"},
			{Name: "workouts", Description: "Workout management operations"},
			{Name: "exercises", Description: "Exercise library operations"},
			{Name: "logs", Description: "Workout logging operations"},
			{Name: "progress", Description: "Progress tracking operations"},
			{Name: "goals", Description: "User goal management operations"},
		},
		Components: &openapi3.Components{
			Schemas: schemas,
		},
		Paths: paths(),
	}

	return doc, nil
}

// WriteDocument regenerates the OpenAPI document beneath dir. The document
// is validated before anything is written.
func WriteDocument(dir string) error {
	doc, err := NewDocument()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding OpenAPI document: %w", err)
	}

	// Round-trip through the loader so the schema references resolve, then
	// validate. A failed run never leaves a broken artifact behind.
	loader := openapi3.NewLoader()
	parsed, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	err = parsed.Validate(loader.Context)
	if err != nil {
		return fmt.Errorf("validating OpenAPI document: %w", err)
	}

	path := filepath.Join(dir, filepath.FromSlash(DocumentPath))

	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

var uuidType = reflect.TypeOf(uuid.UUID{})

func componentSchemas() (openapi3.Schemas, error) {
	// uuid.UUID is a byte array; reflection would describe it as an array of
	// integers, so it is overridden with the string form used on the wire.
	gen := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(
		func(name string, t reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
			if t == uuidType {
				*schema = openapi3.Schema{
					Type:   &openapi3.Types{openapi3.TypeString},
					Format: "uuid",
				}
			}
			return nil
		},
	))

	types := map[string]any{
		"HealthcheckResponse":      HealthcheckResponse{},
		"ErrorResponse":            ErrorResponse{},
		"ValidationErrorResponse":  ValidationErrorResponse{},
		"ExerciseResponse":         ExerciseResponse{},
		"WorkoutGenerateRequest":   WorkoutGenerateRequest{},
		"WorkoutGenerateResponse":  WorkoutGenerateResponse{},
		"CustomWorkoutRequest":     CustomWorkoutRequest{},
		"WorkoutHistoryEntry":      WorkoutHistoryEntry{},
		"WorkoutLogRequest":        WorkoutLogRequest{},
		"WorkoutLogDetailResponse": WorkoutLogDetailResponse{},
		"ExerciseSetLogRequest":    ExerciseSetLogRequest{},
		"ExerciseSetResponse":      ExerciseSetResponse{},
		"ProgressSummaryResponse":  ProgressSummaryResponse{},
		"ExerciseProgressResponse": ExerciseProgressResponse{},
		"GoalRequest":              GoalRequest{},
		"GoalResponse":             GoalResponse{},
	}

	schemas := make(openapi3.Schemas, len(types))
	for name, value := range types {
		ref, err := gen.NewSchemaRefForValue(value, schemas)
		if err != nil {
			return nil, fmt.Errorf("schema for %s: %w", name, err)
		}
		schemas[name] = ref
	}

	return schemas, nil
}

func paths() *openapi3.Paths {
	return openapi3.NewPaths(
		openapi3.WithPath("/", &openapi3.PathItem{
			Get: operation("health", "healthCheck", "Health check",
				withResponse(200, "API status", schemaOf("HealthcheckResponse")),
			),
		}),
		openapi3.WithPath("/exercises", &openapi3.PathItem{
			Get: operation("exercises", "getExercises", "Get all exercises",
				withQuery("primary_muscle", openapi3.NewStringSchema()),
				withQuery("equipment", openapi3.NewStringSchema()),
				withResponse(200, "Exercises matching the filters", arrayOf("ExerciseResponse")),
			),
		}),
		openapi3.WithPath("/exercises/{exerciseId}", &openapi3.PathItem{
			Get: operation("exercises", "getExerciseById", "Get exercise by ID",
				withPathParam("exerciseId", openapi3.NewIntegerSchema()),
				withResponse(200, "Exercise details", schemaOf("ExerciseResponse")),
				withResponse(404, "Exercise not found", schemaOf("ErrorResponse")),
			),
		}),
		openapi3.WithPath("/workouts/generate", &openapi3.PathItem{
			Post: operation("workouts", "generateWorkout", "Generate a personalized workout",
				withRequestBody("WorkoutGenerateRequest"),
				withResponse(200, "Generated workout", schemaOf("WorkoutGenerateResponse")),
				withResponse(400, "Invalid parameters", schemaOf("ErrorResponse")),
				withResponse(404, "User not found", schemaOf("ErrorResponse")),
				withResponse(422, "Validation failure", schemaOf("ValidationErrorResponse")),
			),
		}),
		openapi3.WithPath("/workouts/custom", &openapi3.PathItem{
			Post: operation("workouts", "createCustomWorkout", "Create a custom workout",
				withRequestBody("CustomWorkoutRequest"),
				withResponse(200, "Created workout", schemaOf("WorkoutGenerateResponse")),
				withResponse(400, "Invalid parameters", schemaOf("ErrorResponse")),
				withResponse(404, "User or exercise not found", schemaOf("ErrorResponse")),
				withResponse(422, "Validation failure", schemaOf("ValidationErrorResponse")),
			),
		}),
		openapi3.WithPath("/workouts/history", &openapi3.PathItem{
			Get: operation("workouts", "getWorkoutHistory", "Get workout history",
				withRequiredQuery("user_id", openapi3.NewUUIDSchema()),
				withQuery("limit", openapi3.NewIntegerSchema()),
				withResponse(200, "Workout history with logged sessions", arrayOf("WorkoutHistoryEntry")),
				withResponse(404, "User not found", schemaOf("ErrorResponse")),
			),
		}),
		openapi3.WithPath("/workouts/{workoutId}/log", &openapi3.PathItem{
			Post: operation("logs", "logWorkout", "Log a workout session",
				withPathParam("workoutId", openapi3.NewUUIDSchema()),
				withRequestBody("WorkoutLogRequest"),
				withResponse(200, "Created workout log", schemaOf("WorkoutLogDetailResponse")),
				withResponse(404, "Workout not found", schemaOf("ErrorResponse")),
				withResponse(422, "Validation failure", schemaOf("ValidationErrorResponse")),
			),
		}),
		openapi3.WithPath("/workouts/{workoutId}/exercises/{exerciseId}/log", &openapi3.PathItem{
			Post: operation("logs", "logExerciseSets", "Log exercise sets",
				withPathParam("workoutId", openapi3.NewUUIDSchema()),
				withPathParam("exerciseId", openapi3.NewIntegerSchema()),
				withRequestBody("ExerciseSetLogRequest"),
				withResponse(200, "Created exercise sets", arrayOf("ExerciseSetResponse")),
				withResponse(400, "No active workout log or empty sets", schemaOf("ErrorResponse")),
				withResponse(404, "Workout or exercise not found", schemaOf("ErrorResponse")),
				withResponse(422, "Validation failure", schemaOf("ValidationErrorResponse")),
			),
		}),
		openapi3.WithPath("/workouts/{workoutId}/logs", &openapi3.PathItem{
			Get: operation("logs", "getWorkoutLogs", "Get logs for a workout",
				withPathParam("workoutId", openapi3.NewUUIDSchema()),
				withResponse(200, "Workout logs with exercise sets", arrayOf("WorkoutLogDetailResponse")),
				withResponse(404, "Workout not found", schemaOf("ErrorResponse")),
			),
		}),
		openapi3.WithPath("/progress", &openapi3.PathItem{
			Get: operation("progress", "getProgressSummary", "Get user progress summary",
				withRequiredQuery("user_id", openapi3.NewUUIDSchema()),
				withQuery("days", openapi3.NewIntegerSchema().WithMin(1).WithMax(365)),
				withResponse(200, "Progress statistics", schemaOf("ProgressSummaryResponse")),
				withResponse(404, "User not found", schemaOf("ErrorResponse")),
			),
		}),
		openapi3.WithPath("/progress/exercise/{exerciseId}", &openapi3.PathItem{
			Get: operation("progress", "getExerciseProgress", "Get exercise-specific progress",
				withPathParam("exerciseId", openapi3.NewIntegerSchema()),
				withRequiredQuery("user_id", openapi3.NewUUIDSchema()),
				withQuery("days", openapi3.NewIntegerSchema().WithMin(1).WithMax(365)),
				withResponse(200, "Exercise progression history", schemaOf("ExerciseProgressResponse")),
				withResponse(404, "User or exercise not found", schemaOf("ErrorResponse")),
			),
		}),
		openapi3.WithPath("/goals", &openapi3.PathItem{
			Post: operation("goals", "createGoal", "Create a user goal",
				withRequestBody("GoalRequest"),
				withResponse(201, "Created goal", schemaOf("GoalResponse")),
				withResponse(404, "User not found", schemaOf("ErrorResponse")),
				withResponse(422, "Validation failure", schemaOf("ValidationErrorResponse")),
			),
			Get: operation("goals", "getGoals", "Get goals for a user",
				withRequiredQuery("user_id", openapi3.NewUUIDSchema()),
				withResponse(200, "User goals", arrayOf("GoalResponse")),
				withResponse(404, "User not found", schemaOf("ErrorResponse")),
			),
		}),
	)
}

type operationOption func(*openapi3.Operation)

func operation(tag, id, summary string, opts ...operationOption) *openapi3.Operation {
	op := &openapi3.Operation{
		Tags:        []string{tag},
		OperationID: id,
		Summary:     summary,
		Responses:   openapi3.NewResponses(),
	}

	for _, opt := range opts {
		opt(op)
	}

	return op
}

func withQuery(name string, schema *openapi3.Schema) operationOption {
	return func(op *openapi3.Operation) {
		param := openapi3.NewQueryParameter(name).WithSchema(schema)
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}
}

func withRequiredQuery(name string, schema *openapi3.Schema) operationOption {
	return func(op *openapi3.Operation) {
		param := openapi3.NewQueryParameter(name).WithSchema(schema).WithRequired(true)
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}
}

func withPathParam(name string, schema *openapi3.Schema) operationOption {
	return func(op *openapi3.Operation) {
		param := openapi3.NewPathParameter(name).WithSchema(schema)
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}
}

func withRequestBody(schemaName string) operationOption {
	return func(op *openapi3.Operation) {
		body := openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchemaRef(schemaOf(schemaName))
		op.RequestBody = &openapi3.RequestBodyRef{Value: body}
	}
}

func withResponse(status int, description string, schema *openapi3.SchemaRef) operationOption {
	return func(op *openapi3.Operation) {
		response := openapi3.NewResponse().
			WithDescription(description).
			WithJSONSchemaRef(schema)
		op.Responses.Set(fmt.Sprint(status), &openapi3.ResponseRef{Value: response})
	}
}

func schemaOf(name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, nil)
}

func arrayOf(name string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type:  &openapi3.Types{openapi3.TypeArray},
			Items: schemaOf(name),
		},
	}
}
