package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// SavingSvcFacade exposes savings deposit management.
type SavingSvcFacade interface {
	CreateSaving(ctx context.Context, actor domain.Actor, req dto.CreateSavingRequest) (*domain.Saving, error)
	ListSavings(ctx context.Context) ([]domain.Saving, error)
	UpdateSaving(ctx context.Context, actor domain.Actor, savingID string, req dto.UpdateSavingRequest) (*domain.Saving, error)
	DeleteSaving(ctx context.Context, actor domain.Actor, savingID string) error
}
