package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/linkfo/internal/server/agent"
	"github.com/dmitrijs2005/linkfo/internal/server/models"
	"github.com/dmitrijs2005/linkfo/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/linkfo/internal/validatex"
)

type ChatService struct {
	repomanager repomanager.RepositoryManager
	validate    *validatex.Validator
	now         func() time.Time
}

func NewChatService(m repomanager.RepositoryManager, v *validatex.Validator) *ChatService {
	return &ChatService{repomanager: m, validate: v, now: time.Now}
}

func (s *ChatService) History(ctx context.Context, ownerID string) ([]models.ChatMessage, error) {
	return s.repomanager.Messages().ListByOwner(ctx, ownerID)
}

// Send appends the visitor's message and the agent's canned reply to the
// owner's transcript and returns the reply.
func (s *ChatService) Send(ctx context.Context, ownerID string, req models.NewChatMessage) (*models.ChatMessage, error) {
	req.Message = strings.TrimSpace(req.Message)
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	var reply *models.ChatMessage
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		owner, err := r.Users().GetByID(ctx, ownerID)
		if err != nil {
			return err
		}

		if _, err := r.Messages().Append(ctx, &models.ChatMessage{
			OwnerID:   ownerID,
			Sender:    models.SenderUser,
			Text:      req.Message,
			Timestamp: s.now().UTC(),
		}); err != nil {
			return err
		}

		reply, err = r.Messages().Append(ctx, &models.ChatMessage{
			OwnerID:   ownerID,
			Sender:    models.SenderAgent,
			Text:      agent.Respond(req.Message, owner.Name),
			Timestamp: s.now().UTC(),
		})
		return err
	})
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	return reply, nil
}
