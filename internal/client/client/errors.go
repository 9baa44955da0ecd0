package client

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/linkfo/internal/client/models"
	"github.com/dmitrijs2005/linkfo/internal/common"
)

var (
	// ErrUnavailable reports that the server could not be reached.
	ErrUnavailable = errors.New("server unavailable")
	// ErrNotLoggedIn is returned by authenticated calls made without a
	// saved session.
	ErrNotLoggedIn = common.NewError(common.ErrorUnauthorized, "not logged in")
)

// APIError is a non-2xx response. It matches the common sentinel of its
// status class under errors.Is.
type APIError struct {
	Status  int
	Message string
	Fields  []models.FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return common.ErrorValidation
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusServiceUnavailable:
		return common.ErrorUnavailable
	default:
		return common.ErrorInternal
	}
}
