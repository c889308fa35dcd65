package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/utils"
)

const defaultAdminUserID = "admin"

// userServiceImpl manages the user sequence inside the settings document.
type userServiceImpl struct {
	BaseService
	settings portsrepo.SingletonRepository[domain.Settings]
}

// NewUserService creates the user coordinator.
func NewUserService(settings portsrepo.SingletonRepository[domain.Settings]) portssvc.UserSvcFacade {
	return &userServiceImpl{settings: settings}
}

var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	settings, _, err := s.settings.Find(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read settings for user listing")
		return nil, err
	}
	return settings.Users, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}
	if err := dto.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := domain.User{
		UserID:   req.UserID,
		Name:     req.Name,
		Password: hash,
		Role:     domain.UserRole(req.Role),
	}
	_, err = s.settings.Mutate(ctx, fmt.Sprintf("Add user %s", req.UserID), func(settings domain.Settings) (domain.Settings, error) {
		for _, u := range settings.Users {
			if u.UserID == req.UserID {
				return settings, fmt.Errorf("user %s: %w", req.UserID, apperrors.ErrDuplicate)
			}
		}
		settings.Users = append(settings.Users, user)
		return settings, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create user", slog.String("new_user_id", req.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("new_user_id", user.UserID), slog.String("role", req.Role))
	return &user, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, actor domain.Actor, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	var hash string
	if req.Password != nil {
		h, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		hash = h
	}

	var updated domain.User
	_, err := s.settings.Mutate(ctx, fmt.Sprintf("Update user %s", userID), func(settings domain.Settings) (domain.Settings, error) {
		for i, u := range settings.Users {
			if u.UserID != userID {
				continue
			}
			if req.Name != nil {
				u.Name = *req.Name
			}
			if req.Password != nil {
				u.Password = hash
			}
			if req.Role != nil {
				if u.Role == domain.RoleAdmin && domain.UserRole(*req.Role) != domain.RoleAdmin && countAdmins(settings.Users) == 1 {
					return settings, fmt.Errorf("cannot demote the last admin: %w", apperrors.ErrValidation)
				}
				u.Role = domain.UserRole(*req.Role)
			}
			settings.Users[i] = u
			updated = u
			return settings, nil
		}
		return settings, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("target_user_id", userID))
	return &updated, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, actor domain.Actor, userID string) error {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return err
	}

	_, err := s.settings.Mutate(ctx, fmt.Sprintf("Remove user %s", userID), func(settings domain.Settings) (domain.Settings, error) {
		for i, u := range settings.Users {
			if u.UserID != userID {
				continue
			}
			if u.Role == domain.RoleAdmin && countAdmins(settings.Users) == 1 {
				return settings, fmt.Errorf("cannot remove the last admin: %w", apperrors.ErrValidation)
			}
			settings.Users = append(settings.Users[:i], settings.Users[i+1:]...)
			return settings, nil
		}
		return settings, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}

// EnsureDefaultAdmin seeds the admin login on a fresh repository so the
// application is reachable before any users exist.
func (s *userServiceImpl) EnsureDefaultAdmin(ctx context.Context, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}

	_, err = s.settings.Mutate(ctx, "Seed default admin user", func(settings domain.Settings) (domain.Settings, error) {
		if len(settings.Users) > 0 {
			return settings, portsrepo.ErrNoMutation
		}
		settings.Users = []domain.User{{
			UserID:   defaultAdminUserID,
			Name:     "Administrator",
			Password: hash,
			Role:     domain.RoleAdmin,
		}}
		return settings, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to seed default admin")
		return err
	}
	return nil
}

func countAdmins(users []domain.User) int {
	n := 0
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			n++
		}
	}
	return n
}
