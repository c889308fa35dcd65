package services

import (
	"context"
	"fmt"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/utils/finance"
	"github.com/shopspring/decimal"
)

// reportingServiceImpl computes derived views. Read-only: every number is
// recomputed fresh from the store on each call, never cached, so concurrent
// writers are picked up on the next read.
type reportingServiceImpl struct {
	BaseService
	members      portsrepo.CollectionRepository[domain.Member]
	savings      portsrepo.CollectionRepository[domain.Saving]
	loans        portsrepo.CollectionRepository[domain.Loan]
	payments     portsrepo.CollectionRepository[domain.Payment]
	fines        portsrepo.CollectionRepository[domain.FinePayment]
	expenditures portsrepo.CollectionRepository[domain.Expenditure]
}

// NewReportingService creates the reporting service.
func NewReportingService(
	members portsrepo.CollectionRepository[domain.Member],
	savings portsrepo.CollectionRepository[domain.Saving],
	loans portsrepo.CollectionRepository[domain.Loan],
	payments portsrepo.CollectionRepository[domain.Payment],
	fines portsrepo.CollectionRepository[domain.FinePayment],
	expenditures portsrepo.CollectionRepository[domain.Expenditure],
) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{
		members:      members,
		savings:      savings,
		loans:        loans,
		payments:     payments,
		fines:        fines,
		expenditures: expenditures,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) DashboardSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	members, savings, loans, payments, fines, expenditures, err := s.readAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read documents for dashboard")
		return nil, err
	}

	summary := dto.DashboardSummary{
		TotalMembers:         len(members),
		TotalSavings:         decimal.Zero,
		OutstandingPrincipal: decimal.Zero,
		InterestCollected:    decimal.Zero,
		FinesCollected:       decimal.Zero,
		ExpendituresMade:     decimal.Zero,
	}
	for _, m := range members {
		if m.IsActive {
			summary.ActiveMembers++
		}
		summary.MemberAggregates = append(summary.MemberAggregates,
			finance.MemberAggregate(m.ID, savings, loans, payments, fines))
	}
	for _, sv := range savings {
		summary.TotalSavings = summary.TotalSavings.Add(sv.Amount)
	}
	for _, l := range loans {
		outstanding := finance.OutstandingPrincipal(l, payments)
		if outstanding.IsPositive() {
			summary.ActiveLoans++
			summary.OutstandingPrincipal = summary.OutstandingPrincipal.Add(outstanding)
		}
	}
	for _, p := range payments {
		summary.InterestCollected = summary.InterestCollected.Add(p.InterestPaid)
	}
	for _, f := range fines {
		summary.FinesCollected = summary.FinesCollected.Add(f.Amount)
	}
	for _, e := range expenditures {
		summary.ExpendituresMade = summary.ExpendituresMade.Add(e.Amount)
	}
	return &summary, nil
}

func (s *reportingServiceImpl) MemberReport(ctx context.Context, memberID int) (*domain.MemberAggregate, error) {
	members, savings, loans, payments, fines, _, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, m := range members {
		if m.ID == memberID {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("member %d: %w", memberID, apperrors.ErrNotFound)
	}
	agg := finance.MemberAggregate(memberID, savings, loans, payments, fines)
	return &agg, nil
}

func (s *reportingServiceImpl) PeriodReport(ctx context.Context, start, end string) (*domain.PeriodSummary, error) {
	if start > end {
		return nil, fmt.Errorf("start %s is after end %s: %w", start, end, apperrors.ErrValidation)
	}
	_, savings, loans, payments, fines, expenditures, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := finance.SummarizePeriod(start, end, savings, loans, payments, fines, expenditures)
	return &summary, nil
}

func (s *reportingServiceImpl) MonthlyReport(ctx context.Context, month string) (*domain.PeriodSummary, error) {
	start, end := finance.MonthBounds(month)
	if start == "" {
		return nil, fmt.Errorf("invalid month %q: %w", month, apperrors.ErrValidation)
	}
	return s.PeriodReport(ctx, start, end)
}

func (s *reportingServiceImpl) Defaulters(ctx context.Context, month string) (*domain.DefaulterReport, error) {
	if finance.PreviousMonth(month) == "" {
		return nil, fmt.Errorf("invalid month %q: %w", month, apperrors.ErrValidation)
	}
	members, savings, loans, payments, _, _, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.DefaulterReport{
		Month:             month,
		SavingDefaulters:  finance.SavingDefaulters(month, members, savings),
		InterestDefaulter: finance.InterestDefaulters(month, members, loans, payments),
	}, nil
}

func (s *reportingServiceImpl) ConsistencyReport(ctx context.Context) ([]finance.ConsistencyIssue, error) {
	loans, _, err := s.loans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return finance.CheckPayments(loans, payments), nil
}

func (s *reportingServiceImpl) readAll(ctx context.Context) ([]domain.Member, []domain.Saving, []domain.Loan, []domain.Payment, []domain.FinePayment, []domain.Expenditure, error) {
	members, _, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	savings, _, err := s.savings.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	loans, _, err := s.loans.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	fines, _, err := s.fines.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	expenditures, _, err := s.expenditures.FindAll(ctx)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	return members, savings, loans, payments, fines, expenditures, nil
}
