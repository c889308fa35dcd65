package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// MemberSvcFacade exposes member management to the HTTP surface.
type MemberSvcFacade interface {
	CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMemberByID(ctx context.Context, memberID int) (*domain.Member, error)
	UpdateMember(ctx context.Context, actor domain.Actor, memberID int, req dto.UpdateMemberRequest) (*domain.Member, error)
	SetMemberActive(ctx context.Context, actor domain.Actor, memberID int, active bool) (*domain.Member, error)
	DeleteMember(ctx context.Context, actor domain.Actor, memberID int) error
}
