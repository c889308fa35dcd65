package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
)

// BaseService provides common functionality for all services.
type BaseService struct{}

// GetLogger gets the logger from context or returns the default one.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting.
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting.
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting.
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireWriter rejects actors whose role may not mutate ledger documents.
func (s *BaseService) RequireWriter(ctx context.Context, actor domain.Actor) error {
	if !actor.Role.CanWrite() {
		s.LogWarn(ctx, "Write rejected for role",
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)))
		return fmt.Errorf("role %s may not modify records: %w", actor.Role, apperrors.ErrForbidden)
	}
	return nil
}

// RequireAdmin rejects everyone but admins.
func (s *BaseService) RequireAdmin(ctx context.Context, actor domain.Actor) error {
	if actor.Role != domain.RoleAdmin {
		s.LogWarn(ctx, "Admin-only operation rejected",
			slog.String("user_id", actor.UserID),
			slog.String("role", string(actor.Role)))
		return fmt.Errorf("admin role required: %w", apperrors.ErrForbidden)
	}
	return nil
}
