package dto

import "github.com/shopspring/decimal"

// CreateFineRequest records a fine collected from a member.
type CreateFineRequest struct {
	MemberID int             `json:"memberId" binding:"required"`
	Date     string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Reason   string          `json:"reason" binding:"required,oneof='Saving Default' 'Interest Default' 'Other'"`
	Note     string          `json:"note"`
}

// UpdateFineRequest edits an existing fine.
type UpdateFineRequest struct {
	Date   *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount *decimal.Decimal `json:"amount"`
	Reason *string          `json:"reason" binding:"omitempty,oneof='Saving Default' 'Interest Default' 'Other'"`
	Note   *string          `json:"note"`
}
