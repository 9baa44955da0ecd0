// Package services contains application services for the Linkfo client.
// This file defines the authentication service: register, login, logout
// and restoring a saved session.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/linkfo/internal/client/client"
	"github.com/dmitrijs2005/linkfo/internal/common"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// SessionStore persists the session between CLI runs.
type SessionStore interface {
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token, userID, userName string) error
	User(ctx context.Context) (id, name string, err error)
	ClearToken(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: authenticate against the server and save the session.
//   - Restore: reuse a saved session if the server still accepts its token.
//   - Logout: forget the session locally.
//   - CurrentUser: the id and name of the saved session, if any.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*smodels.UserView, error)
	Login(ctx context.Context, email, password string) (*smodels.UserView, error)
	Restore(ctx context.Context) (*smodels.UserView, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (id, name string, err error)
}

type authService struct {
	client   client.Client
	sessions SessionStore
}

// NewAuthService constructs an AuthService bound to the API client and the
// local session store.
func NewAuthService(c client.Client, sessions SessionStore) AuthService {
	return &authService{client: c, sessions: sessions}
}

func (a *authService) Register(ctx context.Context, email, password, name string) (*smodels.UserView, error) {
	res, err := a.client.Register(ctx, common.NormalizeEmail(email), password, name)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	if err := a.sessions.Save(ctx, res.Token, res.User.ID, res.User.Name); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &res.User, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*smodels.UserView, error) {
	res, err := a.client.Login(ctx, common.NormalizeEmail(email), password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if err := a.sessions.Save(ctx, res.Token, res.User.ID, res.User.Name); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return &res.User, nil
}

// Restore returns the signed-in user when a saved token is still valid.
// It returns (nil, nil) when there is no session or the server rejected it;
// the client has already cleared a rejected token.
func (a *authService) Restore(ctx context.Context) (*smodels.UserView, error) {
	token, err := a.sessions.Token(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	u, err := a.client.Me(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.ClearToken(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (string, string, error) {
	return a.sessions.User(ctx)
}
