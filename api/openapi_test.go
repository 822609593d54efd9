package api

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc, err := NewDocument()
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	loader := openapi3.NewLoader()
	parsed, err := loader.LoadFromData(data)
	require.NoError(t, err)
	require.NoError(t, parsed.Validate(loader.Context))

	assert.Equal(t, "FitPlan Pro API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)

	wantPaths := []string{
		"/",
		"/exercises",
		"/exercises/{exerciseId}",
		"/workouts/generate",
		"/workouts/custom",
		"/workouts/history",
		"/workouts/{workoutId}/log",
		"/workouts/{workoutId}/exercises/{exerciseId}/log",
		"/workouts/{workoutId}/logs",
		"/progress",
		"/progress/exercise/{exerciseId}",
		"/goals",
	}

	assert.Len(t, doc.Paths.Map(), len(wantPaths))
	for _, path := range wantPaths {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}

func TestNewDocumentUUIDSchemas(t *testing.T) {
	doc, err := NewDocument()
	require.NoError(t, err)

	// uuid.UUID fields must not leak their underlying byte-array shape.
	schema := doc.Components.Schemas["WorkoutGenerateResponse"]
	require.NotNil(t, schema)

	workoutId := schema.Value.Properties["workout_id"]
	require.NotNil(t, workoutId)
	assert.True(t, workoutId.Value.Type.Is(openapi3.TypeString))
	assert.Equal(t, "uuid", workoutId.Value.Format)
}

func TestWriteDocument(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDocument(dir))

	path := filepath.Join(dir, "interfaces", "openapi.json")
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(first)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	// Regeneration must overwrite deterministically.
	require.NoError(t, WriteDocument(dir))

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
