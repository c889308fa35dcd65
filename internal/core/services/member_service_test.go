package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/core/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

type MemberServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service portssvc.MemberSvcFacade
}

func (s *MemberServiceTestSuite) SetupTest() {
	s.fx = newFixture()
	s.service = services.NewMemberService(s.fx.members, s.fx.savings, s.fx.loans, s.fx.payments, s.fx.fines)
}

func (s *MemberServiceTestSuite) createMember(name string) *domain.Member {
	member, err := s.service.CreateMember(context.Background(), adminActor, dto.CreateMemberRequest{
		Name:     name,
		Phone:    "9800000000",
		JoinDate: "2025-01-15",
	})
	s.Require().NoError(err)
	return member
}

func (s *MemberServiceTestSuite) TestCreateAssignsSequentialIDs() {
	first := s.createMember("Sita")
	second := s.createMember("Ram")

	s.Equal(1, first.ID)
	s.Equal(2, second.ID)
	s.True(first.IsActive)
}

func (s *MemberServiceTestSuite) TestCreateReusesHighestIDPlusOne() {
	_, err := s.fx.members.ReplaceAll(context.Background(), []domain.Member{
		{ID: 7, Name: "Existing", IsActive: true},
	}, "seed", "")
	s.Require().NoError(err)

	member := s.createMember("Sita")
	s.Equal(8, member.ID)
}

func (s *MemberServiceTestSuite) TestCreateRejectsViewer() {
	_, err := s.service.CreateMember(context.Background(), viewerActor, dto.CreateMemberRequest{
		Name:     "Sita",
		Phone:    "9800000000",
		JoinDate: "2025-01-15",
	})
	s.Require().ErrorIs(err, apperrors.ErrForbidden)
}

func (s *MemberServiceTestSuite) TestCreateValidatesRequest() {
	_, err := s.service.CreateMember(context.Background(), adminActor, dto.CreateMemberRequest{
		Name:     "Sita",
		Phone:    "9800000000",
		JoinDate: "15/01/2025",
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *MemberServiceTestSuite) TestGetMemberByID() {
	created := s.createMember("Sita")

	found, err := s.service.GetMemberByID(context.Background(), created.ID)
	s.Require().NoError(err)
	s.Equal("Sita", found.Name)

	_, err = s.service.GetMemberByID(context.Background(), 999)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemberServiceTestSuite) TestUpdateMember() {
	created := s.createMember("Sita")

	name := "Sita Sharma"
	updated, err := s.service.UpdateMember(context.Background(), treasurerActor, created.ID, dto.UpdateMemberRequest{Name: &name})
	s.Require().NoError(err)
	s.Equal("Sita Sharma", updated.Name)
	s.Equal("9800000000", updated.Phone, "unset fields untouched")
}

func (s *MemberServiceTestSuite) TestSetMemberActive() {
	created := s.createMember("Sita")

	updated, err := s.service.SetMemberActive(context.Background(), adminActor, created.ID, false)
	s.Require().NoError(err)
	s.False(updated.IsActive)
}

func (s *MemberServiceTestSuite) TestDeleteMemberWithoutHistory() {
	created := s.createMember("Sita")

	s.Require().NoError(s.service.DeleteMember(context.Background(), adminActor, created.ID))

	_, err := s.service.GetMemberByID(context.Background(), created.ID)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *MemberServiceTestSuite) TestDeleteMemberBlockedByHistory() {
	created := s.createMember("Sita")
	_, err := s.fx.savings.ReplaceAll(context.Background(), []domain.Saving{
		{ID: "s1", MemberID: created.ID, Amount: decimal.NewFromInt(1000), Date: "2025-02-01"},
	}, "seed", "")
	s.Require().NoError(err)

	err = s.service.DeleteMember(context.Background(), adminActor, created.ID)
	s.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.GetMemberByID(context.Background(), created.ID)
	s.Require().NoError(err, "member kept when deletion is blocked")
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
