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
)

// memberServiceImpl coordinates mutations of the members document. Member
// IDs are the next unused sequence number, assigned inside the mutation so a
// conflict retry re-derives them against the fresh collection.
type memberServiceImpl struct {
	BaseService
	members  portsrepo.CollectionRepository[domain.Member]
	savings  portsrepo.CollectionRepository[domain.Saving]
	loans    portsrepo.CollectionRepository[domain.Loan]
	payments portsrepo.CollectionRepository[domain.Payment]
	fines    portsrepo.CollectionRepository[domain.FinePayment]
}

// NewMemberService creates the member coordinator. The non-member
// collections are only read, to block deletion of members with history.
func NewMemberService(
	members portsrepo.CollectionRepository[domain.Member],
	savings portsrepo.CollectionRepository[domain.Saving],
	loans portsrepo.CollectionRepository[domain.Loan],
	payments portsrepo.CollectionRepository[domain.Payment],
	fines portsrepo.CollectionRepository[domain.FinePayment],
) portssvc.MemberSvcFacade {
	return &memberServiceImpl{
		members:  members,
		savings:  savings,
		loans:    loans,
		payments: payments,
		fines:    fines,
	}
}

var _ portssvc.MemberSvcFacade = (*memberServiceImpl)(nil)

func (s *memberServiceImpl) CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if err := dto.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}

	var created domain.Member
	_, err := s.members.Mutate(ctx, fmt.Sprintf("Add member %s", req.Name), func(members []domain.Member) ([]domain.Member, error) {
		created = domain.Member{
			ID:       nextMemberID(members),
			Name:     req.Name,
			Phone:    req.Phone,
			JoinDate: req.JoinDate,
			Address:  req.Address,
			IsActive: true,
		}
		return append(members, created), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create member", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Member created", slog.Int("member_id", created.ID))
	return &created, nil
}

func (s *memberServiceImpl) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, _, err := s.members.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members")
		return nil, err
	}
	return members, nil
}

func (s *memberServiceImpl) GetMemberByID(ctx context.Context, memberID int) (*domain.Member, error) {
	members, _, err := s.members.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.ID == memberID {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("member %d: %w", memberID, apperrors.ErrNotFound)
}

func (s *memberServiceImpl) UpdateMember(ctx context.Context, actor domain.Actor, memberID int, req dto.UpdateMemberRequest) (*domain.Member, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}

	var updated domain.Member
	_, err := s.members.Mutate(ctx, fmt.Sprintf("Update member %d", memberID), func(members []domain.Member) ([]domain.Member, error) {
		idx := indexOfMember(members, memberID)
		if idx < 0 {
			return nil, fmt.Errorf("member %d: %w", memberID, apperrors.ErrNotFound)
		}
		m := members[idx]
		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Phone != nil {
			m.Phone = *req.Phone
		}
		if req.JoinDate != nil {
			m.JoinDate = *req.JoinDate
		}
		if req.Address != nil {
			m.Address = *req.Address
		}
		if req.IsActive != nil {
			m.IsActive = *req.IsActive
		}
		members[idx] = m
		updated = m
		return members, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.Int("member_id", memberID))
		return nil, err
	}

	s.LogInfo(ctx, "Member updated", slog.Int("member_id", memberID))
	return &updated, nil
}

func (s *memberServiceImpl) SetMemberActive(ctx context.Context, actor domain.Actor, memberID int, active bool) (*domain.Member, error) {
	return s.UpdateMember(ctx, actor, memberID, dto.UpdateMemberRequest{IsActive: &active})
}

// DeleteMember removes a member from the sequence. Members with any
// historical savings, loans, payments or fines are protected: removing them
// would orphan those records, and the store has no referential checks of
// its own.
func (s *memberServiceImpl) DeleteMember(ctx context.Context, actor domain.Actor, memberID int) error {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return err
	}

	if err := s.checkNoHistory(ctx, memberID); err != nil {
		return err
	}

	_, err := s.members.Mutate(ctx, fmt.Sprintf("Remove member %d", memberID), func(members []domain.Member) ([]domain.Member, error) {
		idx := indexOfMember(members, memberID)
		if idx < 0 {
			return nil, fmt.Errorf("member %d: %w", memberID, apperrors.ErrNotFound)
		}
		return append(members[:idx], members[idx+1:]...), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete member", slog.Int("member_id", memberID))
		return err
	}

	s.LogInfo(ctx, "Member deleted", slog.Int("member_id", memberID))
	return nil
}

func (s *memberServiceImpl) checkNoHistory(ctx context.Context, memberID int) error {
	savings, _, err := s.savings.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, r := range savings {
		if r.MemberID == memberID {
			return fmt.Errorf("member %d has savings records: %w", memberID, apperrors.ErrValidation)
		}
	}
	loans, _, err := s.loans.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, r := range loans {
		if r.MemberID == memberID {
			return fmt.Errorf("member %d has loan records: %w", memberID, apperrors.ErrValidation)
		}
	}
	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, r := range payments {
		if r.MemberID == memberID {
			return fmt.Errorf("member %d has payment records: %w", memberID, apperrors.ErrValidation)
		}
	}
	fines, _, err := s.fines.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, r := range fines {
		if r.MemberID == memberID {
			return fmt.Errorf("member %d has fine records: %w", memberID, apperrors.ErrValidation)
		}
	}
	return nil
}

func nextMemberID(members []domain.Member) int {
	next := 1
	for _, m := range members {
		if m.ID >= next {
			next = m.ID + 1
		}
	}
	return next
}

func indexOfMember(members []domain.Member, memberID int) int {
	for i, m := range members {
		if m.ID == memberID {
			return i
		}
	}
	return -1
}
