package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
)

// ChatSvcFacade exposes the shared chat feed. Appending is open to any
// authenticated user; editing is restricted to the sender.
type ChatSvcFacade interface {
	ListMessages(ctx context.Context) ([]domain.ChatMessage, error)
	PostMessage(ctx context.Context, actor domain.Actor, text string) (*domain.ChatMessage, error)
	EditMessage(ctx context.Context, actor domain.Actor, messageID, text string) (*domain.ChatMessage, error)
	DeleteMessage(ctx context.Context, actor domain.Actor, messageID string) error
}
