package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/client/models"
	"github.com/dmitrijs2005/linkfo/internal/common"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// TokenSource supplies the bearer token for authenticated calls and drops
// it once the server rejects it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	ClearToken(ctx context.Context) error
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. http://127.0.0.1:5000/api).
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// do sends one request and decodes a 2xx body into out (when non-nil).
// Authenticated calls attach the saved token; a 401 on such a call clears it.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			return ErrNotLoggedIn
		}
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		if authed && resp.StatusCode == http.StatusUnauthorized {
			if err := c.tokens.ClearToken(ctx); err != nil {
				return errors.Join(apiErr, err)
			}
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) *APIError {
	var eb models.ErrorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&eb)
	if eb.Message == "" {
		eb.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: eb.Message, Fields: eb.Errors}
}

func (c *HTTPClient) Health(ctx context.Context) (*models.Health, error) {
	var h models.Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h, false); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error) {
	in := map[string]string{"email": email, "password": password, "name": name}
	var res models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", in, &res, false); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	in := map[string]string{"email": email, "password": password}
	var res models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", in, &res, false); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*smodels.UserView, error) {
	var res models.UserEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &res, true); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch smodels.ProfilePatch) (*smodels.UserView, error) {
	var res models.UserEnvelope
	if err := c.do(ctx, http.MethodPut, "/users/profile", patch, &res, true); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*smodels.Stats, error) {
	var st smodels.Stats
	if err := c.do(ctx, http.MethodGet, "/users/stats", nil, &st, true); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) RequestAvatarUpload(ctx context.Context, contentType string) (*models.AvatarUpload, error) {
	in := map[string]string{"contentType": contentType}
	var up models.AvatarUpload
	if err := c.do(ctx, http.MethodPost, "/users/avatar", in, &up, true); err != nil {
		return nil, err
	}
	return &up, nil
}

func (c *HTTPClient) Links(ctx context.Context) ([]smodels.Link, error) {
	var links []smodels.Link
	if err := c.do(ctx, http.MethodGet, "/links", nil, &links, true); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *HTTPClient) AddLink(ctx context.Context, req smodels.NewLink) (*smodels.Link, error) {
	var l smodels.Link
	if err := c.do(ctx, http.MethodPost, "/links", req, &l, true); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *HTTPClient) UpdateLink(ctx context.Context, id string, patch smodels.LinkPatch) (*smodels.Link, error) {
	var l smodels.Link
	if err := c.do(ctx, http.MethodPut, "/links/"+url.PathEscape(id), patch, &l, true); err != nil {
		return nil, err
	}
	return &l, nil
}

func (c *HTTPClient) DeleteLink(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/links/"+url.PathEscape(id), nil, nil, true)
}

func (c *HTTPClient) Persona(ctx context.Context) (*smodels.Persona, error) {
	var p smodels.Persona
	if err := c.do(ctx, http.MethodGet, "/persona", nil, &p, true); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdatePersona(ctx context.Context) (*smodels.PersonaUpdateStatus, error) {
	var st smodels.PersonaUpdateStatus
	if err := c.do(ctx, http.MethodPost, "/persona/update", nil, &st, true); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) Sources(ctx context.Context) ([]smodels.ContentSource, error) {
	var src []smodels.ContentSource
	if err := c.do(ctx, http.MethodGet, "/persona/sources", nil, &src, true); err != nil {
		return nil, err
	}
	return src, nil
}

func (c *HTTPClient) AddSource(ctx context.Context, req smodels.NewContentSource) (*smodels.ContentSource, error) {
	var src smodels.ContentSource
	if err := c.do(ctx, http.MethodPost, "/persona/sources", req, &src, true); err != nil {
		return nil, err
	}
	return &src, nil
}

func (c *HTTPClient) ChatHistory(ctx context.Context) ([]smodels.ChatMessage, error) {
	var msgs []smodels.ChatMessage
	if err := c.do(ctx, http.MethodGet, "/chat/history", nil, &msgs, true); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *HTTPClient) SendChat(ctx context.Context, text string) (*smodels.ChatMessage, error) {
	var m smodels.ChatMessage
	if err := c.do(ctx, http.MethodPost, "/chat/message", smodels.NewChatMessage{Message: text}, &m, true); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) PublicProfile(ctx context.Context, userID string) (*smodels.PublicProfile, error) {
	var p smodels.PublicProfile
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(userID), nil, &p, false); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Click(ctx context.Context, userID, linkID string) (int64, error) {
	var res models.ClickResult
	path := "/profiles/" + url.PathEscape(userID) + "/links/" + url.PathEscape(linkID) + "/click"
	if err := c.do(ctx, http.MethodPost, path, nil, &res, false); err != nil {
		return 0, err
	}
	return res.ClickCount, nil
}
