package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/middleware"
	"github.com/sahakari-app/sahakari_backend/internal/utils"
)

// authServiceImpl verifies credentials against the settings document and
// issues signed session tokens.
type authServiceImpl struct {
	BaseService
	settings  portsrepo.SingletonRepository[domain.Settings]
	jwtSecret string
	jwtExpiry time.Duration
	jwtIssuer string
}

// NewAuthService creates the auth service.
func NewAuthService(settings portsrepo.SingletonRepository[domain.Settings], jwtSecret string, jwtExpiry time.Duration, jwtIssuer string) portssvc.AuthSvcFacade {
	return &authServiceImpl{
		settings:  settings,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		jwtIssuer: jwtIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

// Login checks the password and returns a signed token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	settings, _, err := s.settings.Find(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read settings for login")
		return nil, err
	}

	var user *domain.User
	for i := range settings.Users {
		if settings.Users[i].UserID == req.UserID {
			user = &settings.Users[i]
			break
		}
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		s.LogWarn(ctx, "Login failed", slog.String("login_user_id", req.UserID))
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	now := time.Now()
	claims := middleware.AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserID,
			Issuer:    s.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("login_user_id", req.UserID))
		return nil, fmt.Errorf("signing token: %w", err)
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("login_user_id", user.UserID))
	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(*user),
	}, nil
}
