package dto

import "github.com/shopspring/decimal"

// CreateSavingRequest records a deposit for a member.
type CreateSavingRequest struct {
	MemberID int             `json:"memberId" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Remarks  string          `json:"remarks"`
}

// UpdateSavingRequest edits an existing deposit.
type UpdateSavingRequest struct {
	Amount  *decimal.Decimal `json:"amount"`
	Date    *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Remarks *string          `json:"remarks"`
}
