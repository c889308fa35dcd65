package dto

import (
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodReportParams selects an inclusive date window.
type PeriodReportParams struct {
	Start string `form:"start" binding:"required,datetime=2006-01-02"`
	End   string `form:"end" binding:"required,datetime=2006-01-02"`
}

// DefaulterParams selects a calendar month.
type DefaulterParams struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}

// DashboardSummary is the landing-page view of the whole cooperative.
type DashboardSummary struct {
	TotalMembers         int                    `json:"totalMembers"`
	ActiveMembers        int                    `json:"activeMembers"`
	TotalSavings         decimal.Decimal        `json:"totalSavings"`
	ActiveLoans          int                    `json:"activeLoans"`
	OutstandingPrincipal decimal.Decimal        `json:"outstandingPrincipal"`
	InterestCollected    decimal.Decimal        `json:"interestCollected"`
	FinesCollected       decimal.Decimal        `json:"finesCollected"`
	ExpendituresMade     decimal.Decimal        `json:"expendituresMade"`
	MemberAggregates     []domain.MemberAggregate `json:"memberAggregates"`
}
