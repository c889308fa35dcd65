package dto

import "github.com/shopspring/decimal"

// CreatePaymentRequest records a repayment against a loan. The member is
// denormalized from the loan by the service, never supplied by the caller.
type CreatePaymentRequest struct {
	LoanID        string          `json:"loanId" binding:"required"`
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	PrincipalPaid decimal.Decimal `json:"principalPaid"`
	InterestPaid  decimal.Decimal `json:"interestPaid"`
	Remarks       string          `json:"remarks"`
}

// UpdatePaymentRequest edits an existing repayment.
type UpdatePaymentRequest struct {
	Date          *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PrincipalPaid *decimal.Decimal `json:"principalPaid"`
	InterestPaid  *decimal.Decimal `json:"interestPaid"`
	Remarks       *string          `json:"remarks"`
}
