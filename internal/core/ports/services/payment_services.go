package services

import (
	"context"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/dto"
)

// PaymentSvcFacade exposes repayment management.
type PaymentSvcFacade interface {
	CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error)
	DeletePayment(ctx context.Context, actor domain.Actor, paymentID string) error
}
