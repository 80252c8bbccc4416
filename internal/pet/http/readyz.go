package http

import (
	"net/http"
	"time"

	"github.com/moodachu/moodachu/internal/pet/service"
	"github.com/moodachu/moodachu/internal/pet/store"
	"github.com/moodachu/moodachu/pkg/httpx"
	"github.com/moodachu/moodachu/pkg/petsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and the proof verifier
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	petsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	petsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	submissions *service.SubmissionService,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &petsdk.HealthChecks{
			Database: "ok",
			Verifier: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// Check that the proof verifier has its verifying key loaded
		if submissions == nil || submissions.Verifier == nil {
			checks.Verifier = "error: no verifying key loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := petsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
