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

// paymentServiceImpl coordinates mutations of the payments document. Every
// payment mutation is followed by a loan status recompute; the two writes
// hit different documents and are not atomic, so a failure in between leaves
// the persisted status stale until the next recompute.
type paymentServiceImpl struct {
	BaseService
	payments   portsrepo.CollectionRepository[domain.Payment]
	loans      portsrepo.CollectionRepository[domain.Loan]
	recomputer portssvc.LoanStatusRecomputer
}

// PaymentServiceOption configures the payment service.
type PaymentServiceOption func(*paymentServiceImpl)

// WithStatusRecomputer injects the loan status recompute pass to run after
// payment mutations.
func WithStatusRecomputer(r portssvc.LoanStatusRecomputer) PaymentServiceOption {
	return func(s *paymentServiceImpl) {
		s.recomputer = r
	}
}

// NewPaymentService creates the payment coordinator.
func NewPaymentService(
	payments portsrepo.CollectionRepository[domain.Payment],
	loans portsrepo.CollectionRepository[domain.Loan],
	options ...PaymentServiceOption,
) portssvc.PaymentSvcFacade {
	svc := &paymentServiceImpl{payments: payments, loans: loans}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PaymentSvcFacade = (*paymentServiceImpl)(nil)

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, actor domain.Actor, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if err := dto.Validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
	}
	if err := requireNonNegative("principalPaid", req.PrincipalPaid); err != nil {
		return nil, err
	}
	if err := requireNonNegative("interestPaid", req.InterestPaid); err != nil {
		return nil, err
	}
	if req.PrincipalPaid.IsZero() && req.InterestPaid.IsZero() {
		return nil, fmt.Errorf("payment must pay principal or interest: %w", apperrors.ErrValidation)
	}

	loans, _, err := s.loans.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var loan *domain.Loan
	for i := range loans {
		if loans[i].ID == req.LoanID {
			loan = &loans[i]
			break
		}
	}
	if loan == nil {
		return nil, fmt.Errorf("loan %s does not exist: %w", req.LoanID, apperrors.ErrValidation)
	}

	payment := domain.Payment{
		ID:            uuid.NewString(),
		LoanID:        loan.ID,
		MemberID:      loan.MemberID, // denormalized from the loan
		Date:          req.Date,
		PrincipalPaid: req.PrincipalPaid,
		InterestPaid:  req.InterestPaid,
		Remarks:       req.Remarks,
	}
	_, err = s.payments.Mutate(ctx, fmt.Sprintf("Add payment for loan %s", loan.ID), func(payments []domain.Payment) ([]domain.Payment, error) {
		return append(payments, payment), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment", slog.String("loan_id", req.LoanID))
		return nil, err
	}

	s.recomputeAfterMutation(ctx, payment.ID)
	s.LogInfo(ctx, "Payment created", slog.String("payment_id", payment.ID), slog.String("loan_id", loan.ID))
	return &payment, nil
}

func (s *paymentServiceImpl) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	payments, _, err := s.payments.FindAll(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}
	return payments, nil
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return nil, err
	}
	if req.PrincipalPaid != nil {
		if err := requireNonNegative("principalPaid", *req.PrincipalPaid); err != nil {
			return nil, err
		}
	}
	if req.InterestPaid != nil {
		if err := requireNonNegative("interestPaid", *req.InterestPaid); err != nil {
			return nil, err
		}
	}

	var updated domain.Payment
	_, err := s.payments.Mutate(ctx, fmt.Sprintf("Update payment %s", paymentID), func(payments []domain.Payment) ([]domain.Payment, error) {
		for i, p := range payments {
			if p.ID != paymentID {
				continue
			}
			if req.Date != nil {
				p.Date = *req.Date
			}
			if req.PrincipalPaid != nil {
				p.PrincipalPaid = *req.PrincipalPaid
			}
			if req.InterestPaid != nil {
				p.InterestPaid = *req.InterestPaid
			}
			if req.Remarks != nil {
				p.Remarks = *req.Remarks
			}
			payments[i] = p
			updated = p
			return payments, nil
		}
		return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update payment", slog.String("payment_id", paymentID))
		return nil, err
	}

	s.recomputeAfterMutation(ctx, paymentID)
	s.LogInfo(ctx, "Payment updated", slog.String("payment_id", paymentID))
	return &updated, nil
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, actor domain.Actor, paymentID string) error {
	if err := s.RequireWriter(ctx, actor); err != nil {
		return err
	}

	_, err := s.payments.Mutate(ctx, fmt.Sprintf("Remove payment %s", paymentID), func(payments []domain.Payment) ([]domain.Payment, error) {
		for i, p := range payments {
			if p.ID == paymentID {
				return append(payments[:i], payments[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("payment %s: %w", paymentID, apperrors.ErrNotFound)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete payment", slog.String("payment_id", paymentID))
		return err
	}

	s.recomputeAfterMutation(ctx, paymentID)
	s.LogInfo(ctx, "Payment deleted", slog.String("payment_id", paymentID))
	return nil
}

// recomputeAfterMutation triggers the loan status pass. The payment itself
// is already committed, so a recompute failure is logged rather than
// surfaced; the next successful pass corrects any stale status.
func (s *paymentServiceImpl) recomputeAfterMutation(ctx context.Context, paymentID string) {
	if s.recomputer == nil {
		return
	}
	if _, err := s.recomputer.RecomputeStatuses(ctx); err != nil {
		s.LogWarn(ctx, "Payment committed but loan status recompute failed",
			slog.String("payment_id", paymentID), slog.String("error", err.Error()))
	}
}
