package domain

import "github.com/shopspring/decimal"

// Saving is a single deposit made by a member.
type Saving struct {
	ID       string          `json:"id"`
	MemberID int             `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"` // ISO date (2006-01-02)
	Remarks  string          `json:"remarks,omitempty"`
}
