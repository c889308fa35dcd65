package domain

import "github.com/shopspring/decimal"

// Expenditure is money spent by the cooperative itself.
type Expenditure struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"` // ISO date (2006-01-02)
	Item   string          `json:"item"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note,omitempty"`
}
