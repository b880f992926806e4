package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/finance/internal/finance/store"
	"github.com/aussiebroadwan/finance/pkg/financesdk"
	"github.com/aussiebroadwan/finance/pkg/httpx"
	"github.com/aussiebroadwan/finance/pkg/jwtx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database connection and that a session signing key is loaded
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	financesdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	financesdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	verifier jwtx.Verifier,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &financesdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if rv, ok := verifier.(interface{ Ready() bool }); ok && !rv.Ready() {
			checks.Signer = "error: no keys loaded"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, financesdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
