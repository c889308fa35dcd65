package domain

import "github.com/shopspring/decimal"

// MemberAggregate is the derived financial position of one member. The same
// computation backs both on-screen summaries and exported reports so the two
// always agree.
type MemberAggregate struct {
	MemberID        int             `json:"memberId"`
	TotalSavings    decimal.Decimal `json:"totalSavings"`
	LoansIssued     decimal.Decimal `json:"loansIssued"`
	PrincipalPaid   decimal.Decimal `json:"principalPaid"`
	InterestPaid    decimal.Decimal `json:"interestPaid"`
	Fines           decimal.Decimal `json:"fines"`
	NetContribution decimal.Decimal `json:"netContribution"` // savings + interest + fines - loans issued
}

// PeriodSummary is a rollup of activity inside one inclusive date window.
// Monthly, quarterly and annual reports differ only in the window.
type PeriodSummary struct {
	Start              string          `json:"start"`
	End                string          `json:"end"`
	SavingsCollected   decimal.Decimal `json:"savingsCollected"`
	LoansIssued        decimal.Decimal `json:"loansIssued"`
	PrincipalCollected decimal.Decimal `json:"principalCollected"`
	InterestCollected  decimal.Decimal `json:"interestCollected"`
	FinesCollected     decimal.Decimal `json:"finesCollected"`
	ExpendituresMade   decimal.Decimal `json:"expendituresMade"`
	Net                decimal.Decimal `json:"net"`
}

// LoanSummary is the derived view of one loan.
type LoanSummary struct {
	Loan                 Loan            `json:"loan"`
	OutstandingPrincipal decimal.Decimal `json:"outstandingPrincipal"`
	MonthlyInterestDue   decimal.Decimal `json:"monthlyInterestDue"`
	TotalPrincipalPaid   decimal.Decimal `json:"totalPrincipalPaid"`
	TotalInterestPaid    decimal.Decimal `json:"totalInterestPaid"`
}

// DefaulterReport lists members failing their expected periodic actions for
// one calendar month. Both lists are derived, never stored.
type DefaulterReport struct {
	Month             string   `json:"month"` // 2006-01
	SavingDefaulters  []Member `json:"savingDefaulters"`
	InterestDefaulter []Member `json:"interestDefaulters"`
}
