package domain

import "github.com/shopspring/decimal"

// Payment is one repayment against a loan. MemberID is denormalized from the
// loan at creation time; Payment.MemberID must equal the loan's MemberID for
// Payment.LoanID, an invariant the store does not enforce.
type Payment struct {
	ID            string          `json:"id"`
	LoanID        string          `json:"loanId"`
	MemberID      int             `json:"memberId"`
	Date          string          `json:"date"` // ISO date (2006-01-02)
	PrincipalPaid decimal.Decimal `json:"principalPaid"`
	InterestPaid  decimal.Decimal `json:"interestPaid"`
	Remarks       string          `json:"remarks,omitempty"`
}
