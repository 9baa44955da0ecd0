package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/linkfo/internal/client/client"
	"github.com/dmitrijs2005/linkfo/internal/client/models"
	"github.com/dmitrijs2005/linkfo/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/linkfo/internal/common"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupSessions(t *testing.T) *metadata.SessionStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return metadata.NewSessionStore(metadata.NewSQLiteRepository(db))
}

// ---- fake client ----

// fakeClient implements client.Client for AuthService unit tests. Only the
// auth calls are exercised; the embedded interface panics on anything else.
type fakeClient struct {
	client.Client

	AuthRes  *models.AuthResponse
	AuthErr  error
	MeRes    *smodels.UserView
	MeErr    error
	MeCalls  int
	LastUser string
	LastPass string
	LastName string
}

func (f *fakeClient) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	f.LastUser, f.LastPass, f.LastName = email, password, name
	return f.AuthRes, f.AuthErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	f.LastUser, f.LastPass = email, password
	return f.AuthRes, f.AuthErr
}

func (f *fakeClient) Me(ctx context.Context) (*smodels.UserView, error) {
	f.MeCalls++
	return f.MeRes, f.MeErr
}

func demoAuth() *models.AuthResponse {
	return &models.AuthResponse{
		Token: "jwt",
		User:  smodels.UserView{ID: "1", Email: "user@example.com", Name: "Alex Johnson"},
	}
}

func TestLogin_SavesSession(t *testing.T) {
	ctx := context.Background()
	sessions := setupSessions(t)
	fc := &fakeClient{AuthRes: demoAuth()}
	svc := NewAuthService(fc, sessions)

	u, err := svc.Login(ctx, "  User@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Alex Johnson", u.Name)
	assert.Equal(t, "user@example.com", fc.LastUser)

	tok, err := sessions.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt", tok)

	id, name, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", id)
	assert.Equal(t, "Alex Johnson", name)
}

func TestLogin_ErrorLeavesNoSession(t *testing.T) {
	ctx := context.Background()
	sessions := setupSessions(t)
	apiErr := &client.APIError{Status: 400, Message: "invalid email or password"}
	svc := NewAuthService(&fakeClient{AuthErr: apiErr}, sessions)

	_, err := svc.Login(ctx, "user@example.com", "bad")
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "login error")

	tok, err := sessions.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestRegister_PassesNameAndSaves(t *testing.T) {
	ctx := context.Background()
	sessions := setupSessions(t)
	fc := &fakeClient{AuthRes: demoAuth()}
	svc := NewAuthService(fc, sessions)

	_, err := svc.Register(ctx, "New@Example.com", "pw", "Alex Johnson")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", fc.LastUser)
	assert.Equal(t, "Alex Johnson", fc.LastName)

	tok, _ := sessions.Token(ctx)
	assert.Equal(t, "jwt", tok)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("no session skips the server", func(t *testing.T) {
		fc := &fakeClient{}
		u, err := NewAuthService(fc, setupSessions(t)).Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, u)
		assert.Zero(t, fc.MeCalls)
	})

	t.Run("valid token", func(t *testing.T) {
		sessions := setupSessions(t)
		require.NoError(t, sessions.Save(ctx, "jwt", "1", "Alex"))
		fc := &fakeClient{MeRes: &smodels.UserView{ID: "1", Name: "Alex"}}

		u, err := NewAuthService(fc, sessions).Restore(ctx)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "1", u.ID)
	})

	t.Run("rejected token", func(t *testing.T) {
		sessions := setupSessions(t)
		require.NoError(t, sessions.Save(ctx, "old", "1", "Alex"))
		fc := &fakeClient{MeErr: &client.APIError{Status: 401, Message: "Invalid token."}}

		u, err := NewAuthService(fc, sessions).Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("server down", func(t *testing.T) {
		sessions := setupSessions(t)
		require.NoError(t, sessions.Save(ctx, "jwt", "1", "Alex"))
		fc := &fakeClient{MeErr: client.ErrUnavailable}

		_, err := NewAuthService(fc, sessions).Restore(ctx)
		assert.True(t, errors.Is(err, client.ErrUnavailable))
	})
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	sessions := setupSessions(t)
	require.NoError(t, sessions.Save(ctx, "jwt", "1", "Alex"))

	require.NoError(t, NewAuthService(&fakeClient{}, sessions).Logout(ctx))

	tok, err := sessions.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
