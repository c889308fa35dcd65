package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// UserSvcFacade manages logins stored inside the settings document.
type UserSvcFacade interface {
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, actor domain.Actor, userID string) error

	// EnsureDefaultAdmin seeds an admin login when the settings document has
	// no users yet, so a fresh repository is reachable.
	EnsureDefaultAdmin(ctx context.Context, password string) error
}

// AuthSvcFacade verifies credentials and issues session tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
