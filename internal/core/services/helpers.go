package services

import (
	"context"
	"fmt"

	"github.com/sahakari-app/sahakari_backend/internal/apperrors"
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	portsrepo "github.com/sahakari-app/sahakari_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// requireActiveMember loads the member collection and checks that memberID
// exists and is active. Used by every coordinator that attaches records to a
// member; the check and the subsequent write are separate documents, so this
// is best-effort referential integrity, not a transaction.
func requireActiveMember(ctx context.Context, members portsrepo.CollectionRepository[domain.Member], memberID int) (*domain.Member, error) {
	all, _, err := members.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range all {
		if m.ID == memberID {
			if !m.IsActive {
				return nil, fmt.Errorf("member %d is inactive: %w", memberID, apperrors.ErrValidation)
			}
			return &m, nil
		}
	}
	return nil, fmt.Errorf("member %d does not exist: %w", memberID, apperrors.ErrValidation)
}

// requirePositive rejects zero or negative monetary amounts.
func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%s must be positive: %w", field, apperrors.ErrValidation)
	}
	return nil
}

// requireNonNegative rejects negative monetary amounts.
func requireNonNegative(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%s must not be negative: %w", field, apperrors.ErrValidation)
	}
	return nil
}
