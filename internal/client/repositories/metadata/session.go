package metadata

import (
	"context"
	"fmt"
)

// Metadata keys of the persisted session.
const (
	KeyToken    = "token"
	KeyUserName = "user_name"
	KeyUserID   = "user_id"
)

// SessionStore persists the bearer token and the signed-in user on top of a
// Repository. The three keys are written and removed together.
type SessionStore struct {
	repo Repository
}

func NewSessionStore(repo Repository) *SessionStore {
	return &SessionStore{repo: repo}
}

// Token returns the saved token, or "" when there is no session.
func (s *SessionStore) Token(ctx context.Context) (string, error) {
	m, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		return "", err
	}
	return m[KeyToken], nil
}

func (s *SessionStore) Save(ctx context.Context, token, userID, userName string) error {
	err := s.repo.Put(ctx, map[string]string{
		KeyToken:    token,
		KeyUserID:   userID,
		KeyUserName: userName,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// User returns the id and name saved with the session.
func (s *SessionStore) User(ctx context.Context) (id, name string, err error) {
	m, err := s.repo.Get(ctx, KeyUserID, KeyUserName)
	if err != nil {
		return "", "", err
	}
	return m[KeyUserID], m[KeyUserName], nil
}

// ClearToken forgets the session.
func (s *SessionStore) ClearToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, KeyToken, KeyUserID, KeyUserName); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
