package domain

import "github.com/shopspring/decimal"

// FineReason categorizes why a fine was collected.
type FineReason string

const (
	FineSavingDefault   FineReason = "Saving Default"
	FineInterestDefault FineReason = "Interest Default"
	FineOther           FineReason = "Other"
)

// FinePayment is a fine collected from a member.
type FinePayment struct {
	ID       string          `json:"id"`
	MemberID int             `json:"memberId"`
	Date     string          `json:"date"` // ISO date (2006-01-02)
	Amount   decimal.Decimal `json:"amount"`
	Reason   FineReason      `json:"reason"`
	Note     string          `json:"note,omitempty"`
}
