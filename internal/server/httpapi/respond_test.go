package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/logging"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", validatex.NewError("title", "title is required"), http.StatusBadRequest, "validation error: title is required"},
		{"conflict", common.NewError(common.ErrorConflict, "user already exists"), http.StatusBadRequest, "user already exists"},
		{"missing token", common.ErrMissingToken, http.StatusUnauthorized, msgNoToken},
		{"malformed token", common.ErrMalformedToken, http.StatusUnauthorized, msgMalformedToken},
		{"expired token", common.ErrTokenExpired, http.StatusUnauthorized, msgInvalidToken},
		{"bad credentials", common.NewError(common.ErrorValidation, "invalid email or password"), http.StatusBadRequest, "invalid email or password"},
		{"unauthorized", common.NewError(common.ErrorUnauthorized, "not allowed"), http.StatusUnauthorized, "not allowed"},
		{"wrapped not found", fmt.Errorf("lookup: %w", common.ErrorNotFound), http.StatusNotFound, "not found"},
		{"unavailable", common.ErrorUnavailable, http.StatusServiceUnavailable, "service unavailable"},
		{"unknown", errors.New("pq: connection refused at 10.0.0.3"), http.StatusInternalServerError, msgInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)

			writeError(rec, req, logging.NopLogger{}, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantMsg, decode[errorResponse](t, rec).Message)
		})
	}
}

func TestWriteError_ValidationListsFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &validatex.ValidationError{Fields: []validatex.FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "url", Message: "url is required"},
	}}

	writeError(rec, httptest.NewRequest(http.MethodPost, "/x", nil), logging.NopLogger{}, err)

	assert.JSONEq(t, `{
		"message": "validation error: title is required; url is required",
		"errors": [
			{"field": "title", "message": "title is required"},
			{"field": "url", "message": "url is required"}
		]
	}`, rec.Body.String())
}
