package dto

import "github.com/shopspring/decimal"

// CreateLoanRequest issues a new loan to a member. InterestRate is an annual
// percentage and may legitimately be zero, so it carries no required tag.
type CreateLoanRequest struct {
	MemberID     int             `json:"memberId" binding:"required"`
	Principal    decimal.Decimal `json:"principal" binding:"required"`
	InterestRate decimal.Decimal `json:"interestRate"`
	StartDate    string          `json:"startDate" binding:"required,datetime=2006-01-02"`
	TermMonths   int             `json:"termMonths" binding:"required,gt=0"`
	Purpose      string          `json:"purpose"`
}

// UpdateLoanRequest edits an existing loan. Status is derived and cannot be
// set directly.
type UpdateLoanRequest struct {
	Principal    *decimal.Decimal `json:"principal"`
	InterestRate *decimal.Decimal `json:"interestRate"`
	StartDate    *string          `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	TermMonths   *int             `json:"termMonths" binding:"omitempty,gt=0"`
	Purpose      *string          `json:"purpose"`
}
