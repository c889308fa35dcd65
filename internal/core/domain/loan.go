package domain

import "github.com/shopspring/decimal"

// LoanStatus indicates whether a loan still carries outstanding principal.
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanClosed LoanStatus = "closed"
)

// Loan is a loan issued to a member. Status is derived from payments and
// persisted back by the status recompute pass; it is never authoritative on
// its own.
type Loan struct {
	ID           string          `json:"id"`
	MemberID     int             `json:"memberId"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interestRate"` // annual percent, simple interest
	StartDate    string          `json:"startDate"`    // ISO date (2006-01-02)
	TermMonths   int             `json:"termMonths"`
	Purpose      string          `json:"purpose,omitempty"`
	Status       LoanStatus      `json:"status,omitempty"`
}
