package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/coderr/internal/domain"
	"go.uber.org/zap"
)

type Response struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithServiceError translates a service error into its HTTP status.
// Unknown errors are logged and reported as 500 without details.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondWithJSON(w, http.StatusBadRequest, Response{Message: "Invalid request data", Errors: verr.Fields})
	case errors.Is(err, domain.ErrValidation):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrConflict):
		RespondWithError(w, http.StatusConflict, err.Error())
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
