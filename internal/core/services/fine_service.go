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

// fineServiceImpl coordinates mutations of the fines document.
type fineServiceImpl struct {
	BaseService
	fines   portsrepo.CollectionRepository[domain.FinePayment]
	members portsrepo.CollectionRepository[domain.Member]
}

// NewFineService creates the fine coordinator.
func NewFineService(
	fines portsrepo.CollectionRepository[domain.FinePayment],
	members portsrepo.CollectionRepository[domain.Member],
) portssvc.FineSvcFacade {
	return &fineServiceImpl{fines: fines, members: members}
}

var _ portssvc.FineSvcFacade = (*fineServiceImpl)(nil)

func (s *fineServiceImpl) CreateFine(ctx context.Context, actor domain.Actor, req dto.CreateFineRequest) (*domain.FinePayment, error) {
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

	fine := domain.FinePayment{
		ID:       uuid.NewString(),
		MemberID: req.MemberID,
		Date:     req.Date,
		Amount:   req.Amount,
		Reason:   domain.FineReason(req.Reason),
		Note:     req.Note,
	}
	_, err := s.fines.Mutate(ctx, fmt.Sprintf("Add fine for member %d", req.MemberID), func(fines []domain.FinePayment) ([]domain.FinePayment, error) {
		return append(fines, fine), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create fine", slog.Int("member_id", req.MemberID))
		return nil, err
	}

	s.LogInfo(ctx, "Fine created", slog.String("fine_id", fine.ID), slog.Int("member_id", req.MemberID))
	return &fine, nil
}

func (s *fineServiceImpl) ListFines(ctx context.Context) ([]domain.FinePayment, error) {
	fines, _, err := s.fines.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fines")
		return nil, err
	}
	return fines, nil
}

func (s *fineServiceImpl) UpdateFine(ctx context.Context, actor domain.Actor, fineID string, req dto.UpdateFineRequest) (*domain.FinePayment, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if req.Amount != nil {
		if err := requirePositive("amount", *req.Amount); err != nil {
			return nil, err
		}
	}

	var updated domain.FinePayment
	_, err := s.fines.Mutate(ctx, fmt.Sprintf("Update fine %s", fineID), func(fines []domain.FinePayment) ([]domain.FinePayment, error) {
		for i, f := range fines {
			if f.ID != fineID {
				continue
			}
			if req.Date != nil {
				f.Date = *req.Date
			}
			if req.Amount != nil {
				f.Amount = *req.Amount
			}
			if req.Reason != nil {
				f.Reason = domain.FineReason(*req.Reason)
			}
			if req.Note != nil {
				f.Note = *req.Note
			}
			fines[i] = f
			updated = f
			return fines, nil
		}
		return nil, fmt.Errorf("fine %s: %w", fineID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update fine", slog.String("fine_id", fineID))
		return nil, err
	}

	s.LogInfo(ctx, "Fine updated", slog.String("fine_id", fineID))
	return &updated, nil
}

func (s *fineServiceImpl) DeleteFine(ctx context.Context, actor domain.Actor, fineID string) error {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return err
	}

	_, err := s.fines.Mutate(ctx, fmt.Sprintf("Remove fine %s", fineID), func(fines []domain.FinePayment) ([]domain.FinePayment, error) {
		for i, f := range fines {
			if f.ID == fineID {
				return append(fines[:i], fines[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("fine %s: %w", fineID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete fine", slog.String("fine_id", fineID))
		return err
	}

	s.LogInfo(ctx, "Fine deleted", slog.String("fine_id", fineID))
	return nil
}
