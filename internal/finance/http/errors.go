package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/finance/internal/finance/service"
	"github.com/aussiebroadwan/finance/pkg/financesdk"
	"github.com/aussiebroadwan/finance/pkg/httpx"
	"github.com/aussiebroadwan/finance/pkg/slogx"
)

const invalidCredentialsDescription = "invalid username or passcode"

// writeServiceError maps service errors to responses. Authentication
// failures share one code and message whichever check failed.
func writeServiceError(w http.ResponseWriter, r *http.Request, authStatus int, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, financesdk.ErrorCodeInvalidInput, service.InputProblem(err))
	case service.IsAuthFailure(err):
		httpx.WriteError(w, authStatus, financesdk.ErrorCodeInvalidCredentials, invalidCredentialsDescription)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("err", err))
		httpx.WriteError(w, http.StatusInternalServerError, financesdk.ErrorCodeServerError, "internal server error")
	}
}

func writeInvalidRequest(w http.ResponseWriter, description string) {
	httpx.WriteError(w, http.StatusBadRequest, financesdk.ErrorCodeInvalidRequest, description)
}

func writeInvalidInput(w http.ResponseWriter, description string) {
	httpx.WriteError(w, http.StatusBadRequest, financesdk.ErrorCodeInvalidInput, description)
}
