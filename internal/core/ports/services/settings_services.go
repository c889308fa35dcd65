package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// SettingsSvcFacade manages the organization part of the settings document.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
