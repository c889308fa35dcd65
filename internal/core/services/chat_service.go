package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/google/uuid"
)

// chatServiceImpl coordinates the chat feed. Appending is open to every
// authenticated user; editing is restricted to the sender, deletion to the
// sender or an admin.
type chatServiceImpl struct {
	BaseService
	messages portsrepo.CollectionRepository[domain.ChatMessage]
	settings portsrepo.SingletonRepository[domain.Settings]
}

// NewChatService creates the chat coordinator. Settings are read only to
// resolve sender display names.
func NewChatService(
	messages portsrepo.CollectionRepository[domain.ChatMessage],
	settings portsrepo.SingletonRepository[domain.Settings],
) portssvc.ChatSvcFacade {
	return &chatServiceImpl{messages: messages, settings: settings}
}

var _ portssvc.ChatSvcFacade = (*chatServiceImpl)(nil)

func (s *chatServiceImpl) ListMessages(ctx context.Context) ([]domain.ChatMessage, error) {
	messages, _, err := s.messages.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chat messages")
		return nil, err
	}
	return messages, nil
}

func (s *chatServiceImpl) PostMessage(ctx context.Context, actor domain.Actor, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required: %w", apperrors.ErrValidation)
	}

	message := domain.ChatMessage{
		ID:         uuid.NewString(),
		SenderID:   actor.UserID,
		SenderName: s.senderName(ctx, actor.UserID),
		Text:       text,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	_, err := s.messages.Mutate(ctx, fmt.Sprintf("Chat message from %s", actor.UserID), func(messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
		return append(messages, message), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to post chat message")
		return nil, err
	}

	s.LogDebug(ctx, "Chat message posted", slog.String("message_id", message.ID))
	return &message, nil
}

func (s *chatServiceImpl) EditMessage(ctx context.Context, actor domain.Actor, messageID, text string) (*domain.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required: %w", apperrors.ErrValidation)
	}

	var updated domain.ChatMessage
	_, err := s.messages.Mutate(ctx, fmt.Sprintf("Edit chat message %s", messageID), func(messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
		for i, m := range messages {
			if m.ID != messageID {
				continue
			}
			if m.SenderID != actor.UserID {
				return nil, fmt.Errorf("only the sender may edit a message: %w", apperrors.ErrForbidden)
			}
			m.Text = text
			m.Edited = true
			messages[i] = m
			updated = m
			return messages, nil
		}
		return nil, fmt.Errorf("chat message %s: %w", messageID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to edit chat message", slog.String("message_id", messageID))
		return nil, err
	}

	return &updated, nil
}

func (s *chatServiceImpl) DeleteMessage(ctx context.Context, actor domain.Actor, messageID string) error {
	_, err := s.messages.Mutate(ctx, fmt.Sprintf("Delete chat message %s", messageID), func(messages []domain.ChatMessage) ([]domain.ChatMessage, error) {
		for i, m := range messages {
			if m.ID != messageID {
				continue
			}
			if m.SenderID != actor.UserID && actor.Role != domain.RoleAdmin {
				return nil, fmt.Errorf("only the sender or an admin may delete a message: %w", apperrors.ErrForbidden)
			}
			return append(messages[:i], messages[i+1:]...), nil
		}
		return nil, fmt.Errorf("chat message %s: %w", messageID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete chat message", slog.String("message_id", messageID))
		return err
	}
	return nil
}

// senderName is best effort; a missing settings document or unknown user
// just leaves the name empty.
func (s *chatServiceImpl) senderName(ctx context.Context, userID string) string {
	settings, _, err := s.settings.Find(ctx)
	if err != nil {
		return ""
	}
	for _, u := range settings.Users {
		if u.UserID == userID {
			return u.Name
		}
	}
	return ""
}
