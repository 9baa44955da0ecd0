// Package services contains the server-side business logic. Services
// validate input, run multi-step mutations inside repository transactions
// and translate repository errors into client-facing ones.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/cryptox"
	"github.com/dmitrijs2005/linkfo/internal/server/auth"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
)

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=128"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string          `json:"token"`
	User  models.UserView `json:"user"`
}

// UserService handles accounts: registration, login, profile and stats.
type UserService struct {
	repomanager repomanager.RepositoryManager
	tokens      *auth.Codec
	validate    *validatex.Validator
	params      cryptox.PasswordParams

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, tokens *auth.Codec, v *validatex.Validator, params cryptox.PasswordParams) *UserService {
	return &UserService{
		repomanager: m,
		tokens:      tokens,
		validate:    v,
		params:      params,
	}
}

// Register creates an account and signs the new user in. Emails are
// compared after normalisation, so case variants of a taken address fail
// with ErrUserExists.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	req.Email = common.NormalizeEmail(req.Email)
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	hash, err := cryptox.HashPassword([]byte(req.Password), s.params)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created *models.User
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if _, err := r.Users().GetByEmail(ctx, req.Email); err == nil {
			return ErrUserExists
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		u, err := r.Users().Create(ctx, &models.User{
			Email:        req.Email,
			PasswordHash: hash,
			Name:         req.Name,
			AvatarURL:    models.DefaultAvatarURL,
		})
		if errors.Is(err, common.ErrorConflict) {
			return ErrUserExists
		}
		created = u
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.signIn(created)
}

// Login checks credentials. Unknown email and wrong password fail with the
// same ErrInvalidCredentials, and both paths run one argon2 derivation.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users().GetByEmail(ctx, common.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = cryptox.VerifyPassword([]byte(req.Password), s.dummy())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := cryptox.VerifyPassword([]byte(req.Password), u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(u)
}

func (s *UserService) signIn(u *models.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: u.View()}, nil
}

// dummy returns a hash of a random password, computed once, used to keep
// failed lookups as slow as failed verifications.
func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		pw, err := common.MakeRandHexString(16)
		if err == nil {
			s.dummyHash, _ = cryptox.HashPassword([]byte(pw), s.params)
		}
	})
	return s.dummyHash
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.repomanager.Users().GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// UpdateProfile applies the non-nil fields of patch.
func (s *UserService) UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (*models.User, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, err
	}

	var out *models.User
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		u, err := r.Users().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Bio != nil {
			u.Bio = *patch.Bio
		}
		if patch.AvatarURL != nil {
			u.AvatarURL = *patch.AvatarURL
		}
		if err := r.Users().UpdateProfile(ctx, u); err != nil {
			return err
		}
		out = u
		return nil
	})
	if errors.Is(err, common.ErrorNotFound) {
		return nil, ErrUserNotFound
	}
	return out, err
}

const topLinksLimit = 3

// Stats computes the owner's dashboard numbers from the stores.
func (s *UserService) Stats(ctx context.Context, id string) (*models.Stats, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	links, err := s.repomanager.Links().ListByOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	chats, err := s.repomanager.Messages().CountBySender(ctx, id, models.SenderUser)
	if err != nil {
		return nil, err
	}

	st := &models.Stats{
		ProfileViews:     u.ProfileViews,
		ChatInteractions: chats,
		TopLinks:         []models.TopLink{},
	}
	for _, l := range links {
		st.LinkClicks += l.ClickCount
	}

	sort.SliceStable(links, func(i, j int) bool { return links[i].ClickCount > links[j].ClickCount })
	for i := 0; i < len(links) && i < topLinksLimit; i++ {
		st.TopLinks = append(st.TopLinks, models.TopLink{ID: links[i].ID, Title: links[i].Title, Clicks: links[i].ClickCount})
	}

	return st, nil
}
