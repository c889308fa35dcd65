package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
	"github.com/sahakari-app/sahakari_backend/internal/utils/finance"
)

// ReportingSvcFacade computes derived views. Everything here is read-only
// and delegates the arithmetic to the finance package so screens and
// exported reports agree bit for bit.
type ReportingSvcFacade interface {
	DashboardSummary(ctx context.Context) (*dto.DashboardSummary, error)
	MemberReport(ctx context.Context, memberID int) (*domain.MemberAggregate, error)
	PeriodReport(ctx context.Context, start, end string) (*domain.PeriodSummary, error)
	MonthlyReport(ctx context.Context, month string) (*domain.PeriodSummary, error)
	Defaulters(ctx context.Context, month string) (*domain.DefaulterReport, error)
	ConsistencyReport(ctx context.Context) ([]finance.ConsistencyIssue, error)
}
