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
	"github.com/sahakari-app/sahakari_backend/internal/utils/finance"
	"github.com/google/uuid"
)

// loanServiceImpl coordinates mutations of the loans document and owns the
// status recompute pass.
type loanServiceImpl struct {
	BaseService
	loans    portsrepo.CollectionRepository[domain.Loan]
	payments portsrepo.CollectionRepository[domain.Payment]
	members  portsrepo.CollectionRepository[domain.Member]
}

// NewLoanService creates the loan coordinator.
func NewLoanService(
	loans portsrepo.CollectionRepository[domain.Loan],
	payments portsrepo.CollectionRepository[domain.Payment],
	members portsrepo.CollectionRepository[domain.Member],
) portssvc.LoanSvcFacade {
	return &loanServiceImpl{loans: loans, payments: payments, members: members}
}

var _ portssvc.LoanSvcFacade = (*loanServiceImpl)(nil)

func (s *loanServiceImpl) CreateLoan(ctx context.Context, actor domain.Actor, req dto.CreateLoanRequest) (*domain.Loan, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if err := dto.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	if err := requirePositive("principal", req.Principal); err != nil {
		return nil, err
	}
	if err := requireNonNegative("interestRate", req.InterestRate); err != nil {
		return nil, err
	}
	if _, err := requireActiveMember(ctx, s.members, req.MemberID); err != nil {
		return nil, err
	}

	loan := domain.Loan{
		ID:           uuid.NewString(),
		MemberID:     req.MemberID,
		Principal:    req.Principal,
		InterestRate: req.InterestRate,
		StartDate:    req.StartDate,
		TermMonths:   req.TermMonths,
		Purpose:      req.Purpose,
		Status:       domain.LoanActive,
	}
	_, err := s.loans.Mutate(ctx, fmt.Sprintf("Add loan for member %d", req.MemberID), func(loans []domain.Loan) ([]domain.Loan, error) {
		return append(loans, loan), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create loan", slog.Int("member_id", req.MemberID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan created", slog.String("loan_id", loan.ID), slog.Int("member_id", req.MemberID))
	return &loan, nil
}

func (s *loanServiceImpl) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, _, err := s.loans.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans")
		return nil, err
	}
	return loans, nil
}

func (s *loanServiceImpl) GetLoanSummary(ctx context.Context, loanID string) (*domain.LoanSummary, error) {
	loans, _, err := s.loans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, loan := range loans {
		if loan.ID == loanID {
			summary := finance.Summarize(loan, payments)
			return &summary, nil
		}
	}
	return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
}

func (s *loanServiceImpl) UpdateLoan(ctx context.Context, actor domain.Actor, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if req.Principal != nil {
		if err := requirePositive("principal", *req.Principal); err != nil {
			return nil, err
		}
	}
	if req.InterestRate != nil {
		if err := requireNonNegative("interestRate", *req.InterestRate); err != nil {
			return nil, err
		}
	}

	var updated domain.Loan
	_, err := s.loans.Mutate(ctx, fmt.Sprintf("Update loan %s", loanID), func(loans []domain.Loan) ([]domain.Loan, error) {
		for i, l := range loans {
			if l.ID != loanID {
				continue
			}
			if req.Principal != nil {
				l.Principal = *req.Principal
			}
			if req.InterestRate != nil {
				l.InterestRate = *req.InterestRate
			}
			if req.StartDate != nil {
				l.StartDate = *req.StartDate
			}
			if req.TermMonths != nil {
				l.TermMonths = *req.TermMonths
			}
			if req.Purpose != nil {
				l.Purpose = *req.Purpose
			}
			loans[i] = l
			updated = l
			return loans, nil
		}
		return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update loan", slog.String("loan_id", loanID))
		return nil, err
	}

	// Principal edits can change whether the loan is fully repaid.
	if req.Principal != nil {
		if _, err := s.RecomputeStatuses(ctx); err != nil {
			s.LogWarn(ctx, "Loan updated but status recompute failed",
				slog.String("loan_id", loanID), slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Loan updated", slog.String("loan_id", loanID))
	return &updated, nil
}

// DeleteLoan removes a loan. Loans with payments against them are protected,
// matching the member-deletion rule.
func (s *loanServiceImpl) DeleteLoan(ctx context.Context, actor domain.Actor, loanID string) error {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return err
	}

	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.LoanID == loanID {
			return fmt.Errorf("loan %s has payment records: %w", loanID, apperrors.ErrValidation)
		}
	}

	_, err = s.loans.Mutate(ctx, fmt.Sprintf("Remove loan %s", loanID), func(loans []domain.Loan) ([]domain.Loan, error) {
		for i, l := range loans {
			if l.ID == loanID {
				return append(loans[:i], loans[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete loan", slog.String("loan_id", loanID))
		return err
	}

	s.LogInfo(ctx, "Loan deleted", slog.String("loan_id", loanID))
	return nil
}

// RecomputeStatuses re-derives every loan's status from current payments and
// persists the collection only when at least one status changed. Closure is
// a pure function of the outstanding balance, so deleting the payments of a
// closed loan re-opens it here.
func (s *loanServiceImpl) RecomputeStatuses(ctx context.Context) (bool, error) {
	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		return false, err
	}

	changed := false
	_, err = s.loans.Mutate(ctx, "Recompute loan statuses", func(loans []domain.Loan) ([]domain.Loan, error) {
		changed = false
		for i, loan := range loans {
			status := finance.LoanStatus(loan, payments)
			if loan.Status != status {
				loans[i].Status = status
				changed = true
			}
		}
		if !changed {
			return nil, portsrepo.ErrNoMutation
		}
		return loans, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute loan statuses")
		return false, err
	}

	if changed {
		s.LogInfo(ctx, "Loan statuses recomputed and persisted")
	}
	return changed, nil
}
