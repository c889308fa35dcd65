package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// ExpenditureSvcFacade exposes expenditure management.
type ExpenditureSvcFacade interface {
	CreateExpenditure(ctx context.Context, actor domain.Actor, req dto.CreateExpenditureRequest) (*domain.Expenditure, error)
	ListExpenditures(ctx context.Context) ([]domain.Expenditure, error)
	UpdateExpenditure(ctx context.Context, actor domain.Actor, expenditureID string, req dto.UpdateExpenditureRequest) (*domain.Expenditure, error)
	DeleteExpenditure(ctx context.Context, actor domain.Actor, expenditureID string) error
}
