package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/linkfo/internal/client/client"
	"github.com/dmitrijs2005/linkfo/internal/client/models"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// stubInputs replaces the prompt helpers: getSimpleText and getMultiline
// answer from texts in order, getPassword returns password.
func stubInputs(t *testing.T, password []byte, texts ...string) {
	t.Helper()
	origST, origML, origGP := getSimpleText, getMultiline, getPassword

	next := func() (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getMultiline = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return next() }
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }

	t.Cleanup(func() {
		getSimpleText = origST
		getMultiline = origML
		getPassword = origGP
	})
}

type fakeAuth struct {
	regEmail, regPass, regName string
	loginEmail, loginPass      string

	user       *smodels.UserView
	err        error
	logoutErr  error
	loggedOut  bool
	restoreErr error
}

func (f *fakeAuth) Register(_ context.Context, email, password, name string) (*smodels.UserView, error) {
	f.regEmail, f.regPass, f.regName = email, password, name
	return f.user, f.err
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*smodels.UserView, error) {
	f.loginEmail, f.loginPass = email, password
	return f.user, f.err
}

func (f *fakeAuth) Restore(context.Context) (*smodels.UserView, error) { return f.user, f.restoreErr }

func (f *fakeAuth) Logout(context.Context) error {
	f.loggedOut = true
	return f.logoutErr
}

func (f *fakeAuth) CurrentUser(context.Context) (string, string, error) {
	if f.user == nil {
		return "", "", nil
	}
	return f.user.ID, f.user.Name, nil
}

// fakeAPI implements client.Client. Methods not overridden panic through
// the nil embedded interface.
type fakeAPI struct {
	client.Client

	health    error
	me        *smodels.UserView
	err       error
	links     []smodels.Link
	added     smodels.NewLink
	patchID   string
	patch     smodels.LinkPatch
	deleted   string
	profile   smodels.ProfilePatch
	stats     *smodels.Stats
	avatarCT  string
	persona   *smodels.Persona
	sources   []smodels.ContentSource
	newSource smodels.NewContentSource
	sent      string
	history   []smodels.ChatMessage
	public    *smodels.PublicProfile
	clicked   [2]string
}

func (f *fakeAPI) Health(context.Context) (*models.Health, error) {
	if f.health != nil {
		return nil, f.health
	}
	return &models.Health{Status: "OK"}, nil
}

func (f *fakeAPI) Me(context.Context) (*smodels.UserView, error) { return f.me, f.err }

func (f *fakeAPI) UpdateProfile(_ context.Context, p smodels.ProfilePatch) (*smodels.UserView, error) {
	f.profile = p
	return f.me, f.err
}

func (f *fakeAPI) Stats(context.Context) (*smodels.Stats, error) { return f.stats, f.err }

func (f *fakeAPI) RequestAvatarUpload(_ context.Context, ct string) (*models.AvatarUpload, error) {
	f.avatarCT = ct
	if f.err != nil {
		return nil, f.err
	}
	return &models.AvatarUpload{UploadURL: "https://s3/put", AvatarURL: "https://s3/a.png", Key: "avatars/1/x"}, nil
}

func (f *fakeAPI) Links(context.Context) ([]smodels.Link, error) { return f.links, f.err }

func (f *fakeAPI) AddLink(_ context.Context, req smodels.NewLink) (*smodels.Link, error) {
	f.added = req
	if f.err != nil {
		return nil, f.err
	}
	return &smodels.Link{ID: "new", Title: req.Title, URL: req.URL, Position: len(f.links) + 1}, nil
}

func (f *fakeAPI) UpdateLink(_ context.Context, id string, p smodels.LinkPatch) (*smodels.Link, error) {
	f.patchID, f.patch = id, p
	if f.err != nil {
		return nil, f.err
	}
	l := &smodels.Link{ID: id, Position: 1}
	if p.Position != nil {
		l.Position = *p.Position
	}
	return l, nil
}

func (f *fakeAPI) DeleteLink(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

func (f *fakeAPI) Persona(context.Context) (*smodels.Persona, error) { return f.persona, f.err }

func (f *fakeAPI) UpdatePersona(context.Context) (*smodels.PersonaUpdateStatus, error) {
	return &smodels.PersonaUpdateStatus{Message: "Persona update initiated", Status: "processing", EstimatedCompletionTime: "5 minutes"}, f.err
}

func (f *fakeAPI) Sources(context.Context) ([]smodels.ContentSource, error) { return f.sources, f.err }

func (f *fakeAPI) AddSource(_ context.Context, req smodels.NewContentSource) (*smodels.ContentSource, error) {
	f.newSource = req
	return &smodels.ContentSource{ID: "s1", Type: req.Type}, f.err
}

func (f *fakeAPI) SendChat(_ context.Context, text string) (*smodels.ChatMessage, error) {
	f.sent = text
	if f.err != nil {
		return nil, f.err
	}
	return &smodels.ChatMessage{ID: "3", Sender: smodels.SenderAgent, Text: "Hi!"}, nil
}

func (f *fakeAPI) ChatHistory(context.Context) ([]smodels.ChatMessage, error) { return f.history, f.err }

func (f *fakeAPI) PublicProfile(_ context.Context, id string) (*smodels.PublicProfile, error) {
	return f.public, f.err
}

func (f *fakeAPI) Click(_ context.Context, userID, linkID string) (int64, error) {
	f.clicked = [2]string{userID, linkID}
	return 325, f.err
}

func newTestApp(auth *fakeAuth, api *fakeAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		authService: auth,
		api:         api,
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         &out,
	}, &out
}
