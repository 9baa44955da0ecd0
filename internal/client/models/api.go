// Package models holds the client-side views of API envelopes that have no
// counterpart among the server domain models.
package models

import smodels "github.com/dmitrijs2005/linkfo/internal/server/models"

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string           `json:"token"`
	User  smodels.UserView `json:"user"`
}

// UserEnvelope wraps the profile endpoints' payload.
type UserEnvelope struct {
	User smodels.UserView `json:"user"`
}

// Health is the health endpoint payload.
type Health struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Database    string `json:"database"`
	Message     string `json:"message"`
}

// AvatarUpload carries a presigned upload target.
type AvatarUpload struct {
	UploadURL string `json:"uploadUrl"`
	AvatarURL string `json:"avatarUrl"`
	Key       string `json:"key"`
}

// ClickResult is the click endpoint payload.
type ClickResult struct {
	ClickCount int64 `json:"clickCount"`
}

// Message is a plain acknowledgement.
type Message struct {
	Message string `json:"message"`
}

// FieldError names one rejected field of a request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}
