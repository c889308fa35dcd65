package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// LoanStatusRecomputer re-derives every loan's status from current payments
// and persists only when something changed. Running it twice in a row on
// unchanged data performs no second write.
type LoanStatusRecomputer interface {
	RecomputeStatuses(ctx context.Context) (changed bool, err error)
}

// LoanSvcFacade exposes loan management.
type LoanSvcFacade interface {
	LoanStatusRecomputer

	CreateLoan(ctx context.Context, actor domain.Actor, req dto.CreateLoanRequest) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	GetLoanSummary(ctx context.Context, loanID string) (*domain.LoanSummary, error)
	UpdateLoan(ctx context.Context, actor domain.Actor, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error)
	DeleteLoan(ctx context.Context, actor domain.Actor, loanID string) error
}
