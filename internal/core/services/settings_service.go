package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	portssvc "github.com/sahakari-app/sahakari_backend/internal/core/ports/services"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// settingsServiceImpl manages organization metadata in the settings
// document. User management lives in the user service.
type settingsServiceImpl struct {
	BaseService
	settings portsrepo.SingletonRepository[domain.Settings]
}

// NewSettingsService creates the settings coordinator.
func NewSettingsService(settings portsrepo.SingletonRepository[domain.Settings]) portssvc.SettingsSvcFacade {
	return &settingsServiceImpl{settings: settings}
}

var _ portssvc.SettingsSvcFacade = (*settingsServiceImpl)(nil)

func (s *settingsServiceImpl) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, _, err := s.settings.Find(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to read settings")
		return nil, err
	}
	return &settings, nil
}

func (s *settingsServiceImpl) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if err := s.RequireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	updated, err := s.settings.Mutate(ctx, "Update settings", func(settings domain.Settings) (domain.Settings, error) {
		if req.OrgName != nil {
			settings.OrgName = *req.OrgName
		}
		if req.Currency != nil {
			settings.Currency = *req.Currency
		}
		return settings, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated")
	return &updated, nil
}
