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
)

type ReportingServiceTestSuite struct {
	suite.Suite
	fx      *fixture
	service portssvc.ReportingSvcFacade
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.fx = newFixture()
	s.service = services.NewReportingService(s.fx.members, s.fx.savings, s.fx.loans, s.fx.payments, s.fx.fines, s.fx.expenditures)

	ctx := context.Background()
	_, err := s.fx.members.ReplaceAll(ctx, []domain.Member{
		{ID: 1, Name: "Sita", IsActive: true},
		{ID: 2, Name: "Ram", IsActive: false},
	}, "seed", "")
	s.Require().NoError(err)
	_, err = s.fx.savings.ReplaceAll(ctx, []domain.Saving{
		{ID: "s1", MemberID: 1, Amount: decimal.NewFromInt(1000), Date: "2025-11-10"},
		{ID: "s2", MemberID: 2, Amount: decimal.NewFromInt(2000), Date: "2025-12-10"},
	}, "seed", "")
	s.Require().NoError(err)
	_, err = s.fx.loans.ReplaceAll(ctx, []domain.Loan{
		{ID: "l1", MemberID: 1, Principal: decimal.NewFromInt(50000),
			InterestRate: decimal.NewFromInt(20), StartDate: "2025-06-01", TermMonths: 6,
			Status: domain.LoanActive},
	}, "seed", "")
	s.Require().NoError(err)
	_, err = s.fx.payments.ReplaceAll(ctx, []domain.Payment{
		{ID: "p1", LoanID: "l1", MemberID: 1, Date: "2025-11-01",
			PrincipalPaid: decimal.NewFromInt(20000),
			InterestPaid:  decimal.RequireFromString("833.33")},
	}, "seed", "")
	s.Require().NoError(err)
}

func (s *ReportingServiceTestSuite) TestDashboardSummary() {
	summary, err := s.service.DashboardSummary(context.Background())
	s.Require().NoError(err)

	s.Equal(2, summary.TotalMembers)
	s.Equal(1, summary.ActiveMembers)
	s.Equal(1, summary.ActiveLoans)
	s.True(decimal.NewFromInt(3000).Equal(summary.TotalSavings))
	s.True(decimal.NewFromInt(30000).Equal(summary.OutstandingPrincipal))
	s.True(decimal.RequireFromString("833.33").Equal(summary.InterestCollected))
	s.Len(summary.MemberAggregates, 2)
}

func (s *ReportingServiceTestSuite) TestMemberReport() {
	report, err := s.service.MemberReport(context.Background(), 1)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(1000).Equal(report.TotalSavings))
	s.True(decimal.NewFromInt(50000).Equal(report.LoansIssued))

	_, err = s.service.MemberReport(context.Background(), 999)
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReportingServiceTestSuite) TestMonthlyReport() {
	report, err := s.service.MonthlyReport(context.Background(), "2025-11")
	s.Require().NoError(err)
	s.Equal("2025-11-01", report.Start)
	s.Equal("2025-11-30", report.End)
	s.True(decimal.NewFromInt(1000).Equal(report.SavingsCollected))
	s.True(decimal.NewFromInt(20000).Equal(report.PrincipalCollected))

	_, err = s.service.MonthlyReport(context.Background(), "garbage")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestPeriodReportRejectsInvertedWindow() {
	_, err := s.service.PeriodReport(context.Background(), "2025-12-01", "2025-11-01")
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestDefaulters() {
	report, err := s.service.Defaulters(context.Background(), "2025-12")
	s.Require().NoError(err)

	// Sita saved in November but not December, and paid no December interest
	// on her open loan. Ram is inactive and excluded.
	s.Require().Len(report.SavingDefaulters, 1)
	s.Equal(1, report.SavingDefaulters[0].ID)
	s.Require().Len(report.InterestDefaulter, 1)
	s.Equal(1, report.InterestDefaulter[0].ID)
}

func (s *ReportingServiceTestSuite) TestConsistencyReport() {
	ctx := context.Background()
	issues, err := s.service.ConsistencyReport(ctx)
	s.Require().NoError(err)
	s.Empty(issues)

	_, err = s.fx.payments.ReplaceAll(ctx, []domain.Payment{
		{ID: "p-bad", LoanID: "missing", MemberID: 1, Date: "2025-11-01",
			PrincipalPaid: decimal.NewFromInt(1)},
	}, "corrupt", "")
	s.Require().NoError(err)

	issues, err = s.service.ConsistencyReport(ctx)
	s.Require().NoError(err)
	s.Require().Len(issues, 1)
	s.Equal("missing", issues[0].LoanID)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
