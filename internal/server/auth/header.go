package auth

import (
	"strings"

	"github.com/dmitrijs2005/linkfo/internal/common"
)

// ParseAuthorizationHeader extracts the token from "Bearer <token>".
//
// An absent header yields common.ErrMissingToken. A different scheme, or a
// bearer header with nothing after it, yields common.ErrMalformedToken.
func ParseAuthorizationHeader(h string) (string, error) {
	if h == "" {
		return "", common.ErrMissingToken
	}

	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", common.ErrMalformedToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", common.ErrMalformedToken
	}

	return token, nil
}
