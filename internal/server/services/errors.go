package services

import "github.com/dmitrijs2005/linkfo/internal/common"

// Client-facing failures. Each matches its generic kind in common.
var (
	ErrInvalidCredentials = common.NewError(common.ErrorValidation, "invalid email or password")
	ErrUserExists         = common.NewError(common.ErrorConflict, "user already exists")
	ErrUserNotFound       = common.NewError(common.ErrorNotFound, "user not found")
	ErrLinkNotFound       = common.NewError(common.ErrorNotFound, "link not found")
	ErrPersonaNotFound    = common.NewError(common.ErrorNotFound, "persona not found")
	ErrProfileNotFound    = common.NewError(common.ErrorNotFound, "profile not found")
	ErrStorageDisabled    = common.NewError(common.ErrorUnavailable, "avatar storage is not configured")
)
