package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// FineSvcFacade exposes fine management.
type FineSvcFacade interface {
	CreateFine(ctx context.Context, actor domain.Actor, req dto.CreateFineRequest) (*domain.FinePayment, error)
	ListFines(ctx context.Context) ([]domain.FinePayment, error)
	UpdateFine(ctx context.Context, actor domain.Actor, fineID string, req dto.UpdateFineRequest) (*domain.FinePayment, error)
	DeleteFine(ctx context.Context, actor domain.Actor, fineID string) error
}
