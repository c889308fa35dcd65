// Package finance holds the pure ledger computations: no I/O, no clocks, no
// side effects. Services feed it collections read from the document store and
// persist whatever derived state needs persisting. Screen and report code
// share these functions so both always agree on the numbers.
package finance

import (
	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// OutstandingPrincipal is the unpaid portion of a loan's principal, floored
// at zero. Interest payments never reduce principal.
func OutstandingPrincipal(loan domain.Loan, payments []domain.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		if p.LoanID == loan.ID {
			paid = paid.Add(p.PrincipalPaid)
		}
	}
	outstanding := loan.Principal.Sub(paid)
	if outstanding.IsNegative() {
		return decimal.Zero
	}
	return outstanding
}

// MonthlyInterest is the simple flat-rate interest due for one month on the
// current outstanding balance: outstanding * rate / 100 / 12, rounded to two
// places. There is no compounding and nothing is accrued; callers recompute
// it fresh from current data every time.
func MonthlyInterest(outstanding, annualRatePercent decimal.Decimal) decimal.Decimal {
	return outstanding.Mul(annualRatePercent).Div(hundred).Div(monthsInYear).Round(2)
}

// LoanStatus derives a loan's status purely from current data: closed once
// the outstanding principal reaches zero, active otherwise. Deleting a
// payment after closure therefore re-opens the loan.
func LoanStatus(loan domain.Loan, payments []domain.Payment) domain.LoanStatus {
	if OutstandingPrincipal(loan, payments).IsZero() {
		return domain.LoanClosed
	}
	return domain.LoanActive
}

// Summarize builds the derived view of one loan.
func Summarize(loan domain.Loan, payments []domain.Payment) domain.LoanSummary {
	principalPaid := decimal.Zero
	interestPaid := decimal.Zero
	for _, p := range payments {
		if p.LoanID == loan.ID {
			principalPaid = principalPaid.Add(p.PrincipalPaid)
			interestPaid = interestPaid.Add(p.InterestPaid)
		}
	}
	outstanding := OutstandingPrincipal(loan, payments)
	return domain.LoanSummary{
		Loan:                 loan,
		OutstandingPrincipal: outstanding,
		MonthlyInterestDue:   MonthlyInterest(outstanding, loan.InterestRate),
		TotalPrincipalPaid:   principalPaid,
		TotalInterestPaid:    interestPaid,
	}
}

// MemberAggregate totals one member's position across all collections.
// NetContribution = savings + interest paid + fines - loans issued.
func MemberAggregate(memberID int, savings []domain.Saving, loans []domain.Loan, payments []domain.Payment, fines []domain.FinePayment) domain.MemberAggregate {
	agg := domain.MemberAggregate{
		MemberID:      memberID,
		TotalSavings:  decimal.Zero,
		LoansIssued:   decimal.Zero,
		PrincipalPaid: decimal.Zero,
		InterestPaid:  decimal.Zero,
		Fines:         decimal.Zero,
	}
	for _, s := range savings {
		if s.MemberID == memberID {
			agg.TotalSavings = agg.TotalSavings.Add(s.Amount)
		}
	}
	for _, l := range loans {
		if l.MemberID == memberID {
			agg.LoansIssued = agg.LoansIssued.Add(l.Principal)
		}
	}
	for _, p := range payments {
		if p.MemberID == memberID {
			agg.PrincipalPaid = agg.PrincipalPaid.Add(p.PrincipalPaid)
			agg.InterestPaid = agg.InterestPaid.Add(p.InterestPaid)
		}
	}
	for _, f := range fines {
		if f.MemberID == memberID {
			agg.Fines = agg.Fines.Add(f.Amount)
		}
	}
	agg.NetContribution = agg.TotalSavings.
		Add(agg.InterestPaid).
		Add(agg.Fines).
		Sub(agg.LoansIssued)
	return agg
}
