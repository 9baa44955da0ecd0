package client

import (
	"context"

	"github.com/dmitrijs2005/linkfo/internal/client/models"
	smodels "github.com/dmitrijs2005/linkfo/internal/server/models"
)

// Client is the Linkfo REST API as seen by the CLI.
type Client interface {
	Health(ctx context.Context) (*models.Health, error)

	Register(ctx context.Context, email, password, name string) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Me(ctx context.Context) (*smodels.UserView, error)

	UpdateProfile(ctx context.Context, patch smodels.ProfilePatch) (*smodels.UserView, error)
	Stats(ctx context.Context) (*smodels.Stats, error)
	RequestAvatarUpload(ctx context.Context, contentType string) (*models.AvatarUpload, error)

	Links(ctx context.Context) ([]smodels.Link, error)
	AddLink(ctx context.Context, req smodels.NewLink) (*smodels.Link, error)
	UpdateLink(ctx context.Context, id string, patch smodels.LinkPatch) (*smodels.Link, error)
	DeleteLink(ctx context.Context, id string) error

	Persona(ctx context.Context) (*smodels.Persona, error)
	UpdatePersona(ctx context.Context) (*smodels.PersonaUpdateStatus, error)
	Sources(ctx context.Context) ([]smodels.ContentSource, error)
	AddSource(ctx context.Context, req smodels.NewContentSource) (*smodels.ContentSource, error)

	ChatHistory(ctx context.Context) ([]smodels.ChatMessage, error)
	SendChat(ctx context.Context, text string) (*smodels.ChatMessage, error)

	PublicProfile(ctx context.Context, userID string) (*smodels.PublicProfile, error)
	Click(ctx context.Context, userID, linkID string) (int64, error)
}
