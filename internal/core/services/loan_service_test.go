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

type LoanServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service portssvc.LoanSvcFacade
}

func (s *LoanServiceTestSuite) SetupTest() {
	s.fx = newFixture()
	s.service = services.NewLoanService(s.fx.loans, s.fx.payments, s.fx.members)

	_, err := s.fx.members.ReplaceAll(context.Background(), []domain.Member{
		{ID: 1, Name: "Sita", IsActive: true},
		{ID: 2, Name: "Ram", IsActive: false},
	}, "seed", "")
	s.Require().NoError(err)
}

func (s *LoanServiceTestSuite) createLoan(memberID int, principal string) *domain.Loan {
	loan, err := s.service.CreateLoan(context.Background(), adminActor, dto.CreateLoanRequest{
		MemberID:     memberID,
		Principal:    decimal.RequireFromString(principal),
		InterestRate: decimal.RequireFromString("20"),
		StartDate:    "2025-06-01",
		TermMonths:   6,
	})
	s.Require().NoError(err)
	return loan
}

func (s *LoanServiceTestSuite) TestCreateLoan() {
	loan := s.createLoan(1, "50000")

	s.NotEmpty(loan.ID)
	s.Equal(domain.LoanActive, loan.Status)

	loans, err := s.service.ListLoans(context.Background())
	s.Require().NoError(err)
	s.Len(loans, 1)
}

func (s *LoanServiceTestSuite) TestCreateLoanRejectsInactiveMember() {
	_, err := s.service.CreateLoan(context.Background(), adminActor, dto.CreateLoanRequest{
		MemberID:     2,
		Principal:    decimal.RequireFromString("50000"),
		InterestRate: decimal.RequireFromString("20"),
		StartDate:    "2025-06-01",
		TermMonths:   6,
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *LoanServiceTestSuite) TestCreateLoanAllowsZeroInterest() {
	loan, err := s.service.CreateLoan(context.Background(), adminActor, dto.CreateLoanRequest{
		MemberID:   1,
		Principal:  decimal.RequireFromString("10000"),
		StartDate:  "2025-06-01",
		TermMonths: 3,
	})
	s.Require().NoError(err)
	s.True(loan.InterestRate.IsZero())
}

func (s *LoanServiceTestSuite) TestGetLoanSummary() {
	loan := s.createLoan(1, "50000")
	_, err := s.fx.payments.ReplaceAll(context.Background(), []domain.Payment{
		{ID: "p1", LoanID: loan.ID, MemberID: 1, Date: "2025-07-01",
			PrincipalPaid: decimal.RequireFromString("20000"),
			InterestPaid:  decimal.RequireFromString("833.33")},
	}, "seed", "")
	s.Require().NoError(err)

	summary, err := s.service.GetLoanSummary(context.Background(), loan.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("30000").Equal(summary.OutstandingPrincipal))
	s.True(decimal.RequireFromString("500").Equal(summary.MonthlyInterestDue))
}

func (s *LoanServiceTestSuite) TestDeleteLoanBlockedByPayments() {
	loan := s.createLoan(1, "50000")
	_, err := s.fx.payments.ReplaceAll(context.Background(), []domain.Payment{
		{ID: "p1", LoanID: loan.ID, MemberID: 1, Date: "2025-07-01",
			PrincipalPaid: decimal.RequireFromString("1000")},
	}, "seed", "")
	s.Require().NoError(err)

	err = s.service.DeleteLoan(context.Background(), adminActor, loan.ID)
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *LoanServiceTestSuite) TestRecomputeStatusesClosesRepaidLoan() {
	loan := s.createLoan(1, "50000")
	_, err := s.fx.payments.ReplaceAll(context.Background(), []domain.Payment{
		{ID: "p1", LoanID: loan.ID, MemberID: 1, Date: "2025-12-01",
			PrincipalPaid: decimal.RequireFromString("50000")},
	}, "seed", "")
	s.Require().NoError(err)

	changed, err := s.service.RecomputeStatuses(context.Background())
	s.Require().NoError(err)
	s.True(changed)

	loans, err := s.service.ListLoans(context.Background())
	s.Require().NoError(err)
	s.Equal(domain.LoanClosed, loans[0].Status)
}

func (s *LoanServiceTestSuite) TestRecomputeStatusesIdempotent() {
	loan := s.createLoan(1, "50000")
	_, err := s.fx.payments.ReplaceAll(context.Background(), []domain.Payment{
		{ID: "p1", LoanID: loan.ID, MemberID: 1, Date: "2025-12-01",
			PrincipalPaid: decimal.RequireFromString("50000")},
	}, "seed", "")
	s.Require().NoError(err)

	changed, err := s.service.RecomputeStatuses(context.Background())
	s.Require().NoError(err)
	s.True(changed)

	puts := s.fx.backend.PutCount()
	changed, err = s.service.RecomputeStatuses(context.Background())
	s.Require().NoError(err)
	s.False(changed)
	s.Equal(puts, s.fx.backend.PutCount(), "unchanged pass performs no write")
}

func (s *LoanServiceTestSuite) TestUpdatePrincipalTriggersStatusChange() {
	loan := s.createLoan(1, "50000")
	_, err := s.fx.payments.ReplaceAll(context.Background(), []domain.Payment{
		{ID: "p1", LoanID: loan.ID, MemberID: 1, Date: "2025-12-01",
			PrincipalPaid: decimal.RequireFromString("30000")},
	}, "seed", "")
	s.Require().NoError(err)

	// Reducing the principal below the amount already paid closes the loan.
	principal := decimal.RequireFromString("30000")
	_, err = s.service.UpdateLoan(context.Background(), adminActor, loan.ID, dto.UpdateLoanRequest{
		Principal: &principal,
	})
	s.Require().NoError(err)

	loans, err := s.service.ListLoans(context.Background())
	s.Require().NoError(err)
	s.Equal(domain.LoanClosed, loans[0].Status)
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
