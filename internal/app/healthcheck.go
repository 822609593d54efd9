package app

import (
	"net/http"

	"github.com/fitplanpro/workout-backend/api"
)

func (app *Application) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthcheckResponse{
		Status:  "healthy",
		Message: "FitPlan Pro API is running",
		Version: version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
