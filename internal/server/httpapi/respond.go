package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/logging"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
	"github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

// Messages returned for authentication failures.
const (
	msgNoToken        = "Access denied. No token provided."
	msgMalformedToken = "Invalid token format. Must be a Bearer token."
	msgInvalidToken   = "Invalid token."
	msgInternal       = "internal server error"
)

type errorResponse struct {
	Message string                 `json:"message"`
	Errors  []validatex.FieldError `json:"errors,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code and a client-safe body. Errors
// without a known kind are logged and reported as a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, logger logging.Logger, err error) {
	var ve *validatex.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: ve.Error(), Errors: ve.Fields})
		return
	}

	switch {
	case errors.Is(err, common.ErrMissingToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: msgNoToken})
	case errors.Is(err, common.ErrMalformedToken):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: msgMalformedToken})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: msgInvalidToken})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: clientMessage(err)})
	case errors.Is(err, common.ErrorConflict), errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: clientMessage(err)})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: clientMessage(err)})
	case errors.Is(err, common.ErrorUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Message: clientMessage(err)})
	default:
		logger.Error(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"requestID", middleware.GetReqID(r.Context()),
			"error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: msgInternal})
	}
}

// clientMessage prefers the message of a *common.Error and otherwise falls
// back to the generic kind, so wrapped internals never reach the client.
func clientMessage(err error) string {
	var ce *common.Error
	if errors.As(err, &ce) {
		return ce.Error()
	}
	for _, kind := range []error{common.ErrorUnauthorized, common.ErrorConflict, common.ErrorNotFound, common.ErrorUnavailable} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return msgInternal
}

// decodeJSON reads a JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return validatex.NewError("body", "request body is required")
	default:
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return validatex.NewError("body", "request body is too large")
		}
		return validatex.NewError("body", "request body must be a valid JSON object")
	}
}
