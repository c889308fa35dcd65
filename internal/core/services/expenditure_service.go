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
	"github.com/google/uuid"
)

// expenditureServiceImpl coordinates mutations of the expenditures document.
type expenditureServiceImpl struct {
	BaseService
	expenditures portsrepo.CollectionRepository[domain.Expenditure]
}

// NewExpenditureService creates the expenditure coordinator.
func NewExpenditureService(expenditures portsrepo.CollectionRepository[domain.Expenditure]) portssvc.ExpenditureSvcFacade {
	return &expenditureServiceImpl{expenditures: expenditures}
}

var _ portssvc.ExpenditureSvcFacade = (*expenditureServiceImpl)(nil)

func (s *expenditureServiceImpl) CreateExpenditure(ctx context.Context, actor domain.Actor, req dto.CreateExpenditureRequest) (*domain.Expenditure, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if err := dto.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}

	expenditure := domain.Expenditure{
		ID:     uuid.NewString(),
		Date:   req.Date,
		Item:   req.Item,
		Amount: req.Amount,
		Note:   req.Note,
	}
	_, err := s.expenditures.Mutate(ctx, fmt.Sprintf("Add expenditure %s", req.Item), func(expenditures []domain.Expenditure) ([]domain.Expenditure, error) {
		return append(expenditures, expenditure), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create expenditure", slog.String("item", req.Item))
		return nil, err
	}

	s.LogInfo(ctx, "Expenditure created", slog.String("expenditure_id", expenditure.ID))
	return &expenditure, nil
}

func (s *expenditureServiceImpl) ListExpenditures(ctx context.Context) ([]domain.Expenditure, error) {
	expenditures, _, err := s.expenditures.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenditures")
		return nil, err
	}
	return expenditures, nil
}

func (s *expenditureServiceImpl) UpdateExpenditure(ctx context.Context, actor domain.Actor, expenditureID string, req dto.UpdateExpenditureRequest) (*domain.Expenditure, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if err := requirePositive("amount", *req.Amount); err != nil {
			return nil, err
		}
	}

	var updated domain.Expenditure
	_, err := s.expenditures.Mutate(ctx, fmt.Sprintf("Update expenditure %s", expenditureID), func(expenditures []domain.Expenditure) ([]domain.Expenditure, error) {
		for i, e := range expenditures {
			if e.ID != expenditureID {
				continue
			}
			if req.Date != nil {
				e.Date = *req.Date
			}
			if req.Item != nil {
				e.Item = *req.Item
			}
			if req.Amount != nil {
				e.Amount = *req.Amount
			}
			if req.Note != nil {
				e.Note = *req.Note
			}
			expenditures[i] = e
			updated = e
			return expenditures, nil
		}
		return nil, fmt.Errorf("expenditure %s: %w", expenditureID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update expenditure", slog.String("expenditure_id", expenditureID))
		return nil, err
	}

	s.LogInfo(ctx, "Expenditure updated", slog.String("expenditure_id", expenditureID))
	return &updated, nil
}

func (s *expenditureServiceImpl) DeleteExpenditure(ctx context.Context, actor domain.Actor, expenditureID string) error {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return err
	}

	_, err := s.expenditures.Mutate(ctx, fmt.Sprintf("Remove expenditure %s", expenditureID), func(expenditures []domain.Expenditure) ([]domain.Expenditure, error) {
		for i, e := range expenditures {
			if e.ID == expenditureID {
				return append(expenditures[:i], expenditures[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("expenditure %s: %w", expenditureID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expenditure", slog.String("expenditure_id", expenditureID))
		return err
	}

	s.LogInfo(ctx, "Expenditure deleted", slog.String("expenditure_id", expenditureID))
	return nil
}
