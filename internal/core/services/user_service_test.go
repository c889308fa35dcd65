package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/core/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service portssvc.UserSvcFacade
	auth    portssvc.AuthSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.fx = newFixture()
	s.service = services.NewUserService(s.fx.settings)
	s.auth = services.NewAuthService(s.fx.settings, "test-secret", time.Hour, "sahakari-test")
}

func (s *UserServiceTestSuite) TestEnsureDefaultAdminSeedsOnce() {
	ctx := context.Background()
	s.Require().NoError(s.service.EnsureDefaultAdmin(ctx, "letmein"))

	users, err := s.service.ListUsers(ctx, adminActor)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal(domain.RoleAdmin, users[0].Role)

	// A second pass must not reseed or rewrite the document.
	puts := s.fx.backend.PutCount()
	s.Require().NoError(s.service.EnsureDefaultAdmin(ctx, "different"))
	s.Equal(puts, s.fx.backend.PutCount())
}

func (s *UserServiceTestSuite) TestLoginWithSeededAdmin() {
	ctx := context.Background()
	s.Require().NoError(s.service.EnsureDefaultAdmin(ctx, "letmein"))

	resp, err := s.auth.Login(ctx, dto.LoginRequest{UserID: "admin", Password: "letmein"})
	s.Require().NoError(err)
	s.NotEmpty(resp.Token)
	s.Equal(domain.RoleAdmin, resp.User.Role)

	_, err = s.auth.Login(ctx, dto.LoginRequest{UserID: "admin", Password: "wrong"})
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)

	// Unknown user and wrong password are indistinguishable.
	_, err = s.auth.Login(ctx, dto.LoginRequest{UserID: "ghost", Password: "letmein"})
	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestCreateUserAdminOnly() {
	ctx := context.Background()
	s.Require().NoError(s.service.EnsureDefaultAdmin(ctx, "letmein"))

	req := dto.CreateUserRequest{
		UserID:   "ram",
		Name:     "Ram",
		Password: "secret123",
		Role:     "TREASURER",
	}
	_, err := s.service.CreateUser(ctx, treasurerActor, req)
	s.Require().ErrorIs(err, apperrors.ErrForbidden)

	user, err := s.service.CreateUser(ctx, adminActor, req)
	s.Require().NoError(err)
	s.Equal(domain.RoleTreasurer, user.Role)
	s.NotEqual("secret123", user.Password, "password stored hashed")

	_, err = s.service.CreateUser(ctx, adminActor, req)
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestLastAdminProtected() {
	ctx := context.Background()
	s.Require().NoError(s.service.EnsureDefaultAdmin(ctx, "letmein"))

	err := s.service.DeleteUser(ctx, adminActor, "admin")
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	viewer := "VIEWER"
	_, err = s.service.UpdateUser(ctx, adminActor, "admin", dto.UpdateUserRequest{Role: &viewer})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *UserServiceTestSuite) TestDeleteNonLastAdmin() {
	ctx := context.Background()
	s.Require().NoError(s.service.EnsureDefaultAdmin(ctx, "letmein"))
	_, err := s.service.CreateUser(ctx, adminActor, dto.CreateUserRequest{
		UserID:   "second",
		Name:     "Second Admin",
		Password: "secret123",
		Role:     "ADMIN",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteUser(ctx, adminActor, "admin"))

	users, err := s.service.ListUsers(ctx, adminActor)
	s.Require().NoError(err)
	s.Require().Len(users, 1)
	s.Equal("second", users[0].UserID)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
