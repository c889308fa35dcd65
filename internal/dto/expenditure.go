package dto

import "github.com/shopspring/decimal"

// CreateExpenditureRequest records money spent by the cooperative.
type CreateExpenditureRequest struct {
	Date   string          `json:"date" binding:"required,datetime=2006-01-02"`
	Item   string          `json:"item" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note"`
}

// UpdateExpenditureRequest edits an existing expenditure.
type UpdateExpenditureRequest struct {
	Date   *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Item   *string          `json:"item"`
	Amount *decimal.Decimal `json:"amount"`
	Note   *string          `json:"note"`
}
