package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/common"
	"github.com/dmitrijs2005/linkfo/internal/cryptox"
	"github.com/dmitrijs2005/linkfo/internal/logging"
	"github.com/dmitrijs2005/linkfo/internal/server/auth"
	"github.com/dmitrijs2005/linkfo/internal/server/config"
	"github.com/dmitrijs2005/linkfo/internal/server/httpapi"
	"github.com/dmitrijs2005/linkfo/internal/server/metrics"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/server/seed"
	"github.com/dmitrijs2005/linkfo/internal/server/services"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiveServer(t *testing.T) string {
	t.Helper()

	params := cryptox.PasswordParams{Time: 1, Memory: 8 * 1024, Threads: 1, SaltLen: 16, KeyLen: 32}
	m := repomanager.NewMemoryRepositoryManager()
	_, err := seed.Demo(context.Background(), m, params)
	require.NoError(t, err)

	codec, err := auth.NewCodec("client-e2e-secret-client-e2e-secret", time.Hour)
	require.NoError(t, err)
	v := validatex.New()

	h := httpapi.NewRouter(httpapi.Options{
		Services: httpapi.Services{
			Users:    services.NewUserService(m, codec, v, params),
			Links:    services.NewLinkService(m, v),
			Personas: services.NewPersonaService(m, v),
			Chat:     services.NewChatService(m, v),
			Profiles: services.NewProfileService(m),
			Avatars:  services.NewAvatarService(m, v, &config.Config{}),
		},
		Tokens:      codec,
		Storage:     m,
		Metrics:     metrics.NewCollector(),
		Logger:      logging.NopLogger{},
		Environment: "test",
	})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestHTTPClient_AgainstServer(t *testing.T) {
	ctx := context.Background()
	tokens := &memTokens{}
	c := NewHTTPClient(newLiveServer(t), 5*time.Second, tokens)

	h, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "in-memory", h.Database)

	res, err := c.Login(ctx, seed.DemoEmail, seed.DemoPassword)
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, seed.DemoName, res.User.Name)
	tokens.token = res.Token

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, common.DemoUserID, me.ID)

	added, err := c.AddLink(ctx, smodels.NewLink{Title: "Docs", URL: "https://docs.example.com"})
	require.NoError(t, err)
	assert.Equal(t, 5, added.Position)

	pos := 1
	moved, err := c.UpdateLink(ctx, added.ID, smodels.LinkPatch{Position: &pos})
	require.NoError(t, err)
	assert.Equal(t, 1, moved.Position)

	links, err := c.Links(ctx)
	require.NoError(t, err)
	require.Len(t, links, 5)
	assert.Equal(t, added.ID, links[0].ID)

	require.NoError(t, c.DeleteLink(ctx, added.ID))
	err = c.DeleteLink(ctx, added.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	reply, err := c.SendChat(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, smodels.SenderAgent, reply.Sender)

	history, err := c.ChatHistory(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	st, err := c.UpdatePersona(ctx)
	require.NoError(t, err)
	assert.Equal(t, "processing", st.Status)

	n, err := c.Click(ctx, common.DemoUserID, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(325), n)

	p, err := c.PublicProfile(ctx, common.DemoUserID)
	require.NoError(t, err)
	assert.Len(t, p.Links, 4)

	_, err = c.RequestAvatarUpload(ctx, "image/png")
	assert.ErrorIs(t, err, common.ErrorUnavailable)

	_, err = c.AddLink(ctx, smodels.NewLink{Title: "", URL: "nope"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.NotEmpty(t, apiErr.Fields)
}
