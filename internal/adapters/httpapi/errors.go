package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/placegram/places-api/internal/apperr"
)

type messageResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Errors []apperr.FieldError `json:"errors"`
}

// writeError is the terminal step for every failure raised during a request.
// It maps the closed taxonomy to a status and body, logs the failure, and
// downgrades anything unclassified to a generic 500 so internal details never
// reach the client.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Error("unclassified error", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal server error"})
		return
	}

	status := statusFor(ae.Kind)
	logAttrs := []any{"method", r.Method, "path", r.URL.Path, "status", status, "error", ae}
	if status >= 500 {
		log.Error("request failed", logAttrs...)
	} else {
		log.Warn("request failed", logAttrs...)
	}

	if ae.Kind == apperr.Validation {
		fields := ae.Fields
		if fields == nil {
			fields = []apperr.FieldError{}
		}
		writeJSON(w, status, validationResponse{Errors: fields})
		return
	}

	msg := ae.Message
	if ae.Kind == apperr.Internal {
		msg = "internal server error"
	}
	writeJSON(w, status, messageResponse{Message: msg})
}

func statusFor(k apperr.Kind) int {
	switch k {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
