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

// savingServiceImpl coordinates mutations of the savings document.
type savingServiceImpl struct {
	BaseService
	savings portsrepo.CollectionRepository[domain.Saving]
	members portsrepo.CollectionRepository[domain.Member]
}

// NewSavingService creates the savings coordinator.
func NewSavingService(
	savings portsrepo.CollectionRepository[domain.Saving],
	members portsrepo.CollectionRepository[domain.Member],
) portssvc.SavingSvcFacade {
	return &savingServiceImpl{savings: savings, members: members}
}

var _ portssvc.SavingSvcFacade = (*savingServiceImpl)(nil)

func (s *savingServiceImpl) CreateSaving(ctx context.Context, actor domain.Actor, req dto.CreateSavingRequest) (*domain.Saving, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if err := dto.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	if _, err := requireActiveMember(ctx, s.members, req.MemberID); err != nil {
		return nil, err
	}

	saving := domain.Saving{
		ID:       uuid.NewString(),
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Date:     req.Date,
		Remarks:  req.Remarks,
	}
	_, err := s.savings.Mutate(ctx, fmt.Sprintf("Add saving for member %d", req.MemberID), func(savings []domain.Saving) ([]domain.Saving, error) {
		return append(savings, saving), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create saving", slog.Int("member_id", req.MemberID))
		return nil, err
	}

	s.LogInfo(ctx, "Saving created", slog.String("saving_id", saving.ID), slog.Int("member_id", req.MemberID))
	return &saving, nil
}

func (s *savingServiceImpl) ListSavings(ctx context.Context) ([]domain.Saving, error) {
	savings, _, err := s.savings.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings")
		return nil, err
	}
	return savings, nil
}

func (s *savingServiceImpl) UpdateSaving(ctx context.Context, actor domain.Actor, savingID string, req dto.UpdateSavingRequest) (*domain.Saving, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if err := requirePositive("amount", *req.Amount); err != nil {
			return nil, err
		}
	}

	var updated domain.Saving
	_, err := s.savings.Mutate(ctx, fmt.Sprintf("Update saving %s", savingID), func(savings []domain.Saving) ([]domain.Saving, error) {
		for i, sv := range savings {
			if sv.ID != savingID {
				continue
			}
			if req.Amount != nil {
				sv.Amount = *req.Amount
			}
			if req.Date != nil {
				sv.Date = *req.Date
			}
			if req.Remarks != nil {
				sv.Remarks = *req.Remarks
			}
			savings[i] = sv
			updated = sv
			return savings, nil
		}
		return nil, fmt.Errorf("saving %s: %w", savingID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update saving", slog.String("saving_id", savingID))
		return nil, err
	}

	s.LogInfo(ctx, "Saving updated", slog.String("saving_id", savingID))
	return &updated, nil
}

func (s *savingServiceImpl) DeleteSaving(ctx context.Context, actor domain.Actor, savingID string) error {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return err
	}

	_, err := s.savings.Mutate(ctx, fmt.Sprintf("Remove saving %s", savingID), func(savings []domain.Saving) ([]domain.Saving, error) {
		for i, sv := range savings {
			if sv.ID == savingID {
				return append(savings[:i], savings[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("saving %s: %w", savingID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete saving", slog.String("saving_id", savingID))
		return err
	}

	s.LogInfo(ctx, "Saving deleted", slog.String("saving_id", savingID))
	return nil
}
