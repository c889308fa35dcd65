package finance

import (
	"time"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FilterByPeriod keeps records whose ISO date falls inside [start, end],
// inclusive on both ends. ISO dates compare correctly as strings, which is
// also how the documents store them. Monthly, quarterly and annual rollups
// all go through this one filter; only the window differs.
func FilterByPeriod[T any](records []T, dateOf func(T) string, start, end string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		d := dateOf(r)
		if d >= start && d <= end {
			out = append(out, r)
		}
	}
	return out
}

// MonthOf extracts the calendar month ("2006-01") from an ISO date.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// PreviousMonth returns the calendar month before month ("2006-01" format).
func PreviousMonth(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return ""
	}
	return t.AddDate(0, -1, 0).Format("2006-01")
}

// MonthBounds returns the inclusive first and last ISO dates of a month.
func MonthBounds(month string) (string, string) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", ""
	}
	first := t.Format("2006-01-02")
	last := t.AddDate(0, 1, -1).Format("2006-01-02")
	return first, last
}

// SummarizePeriod rolls up all activity inside [start, end]. Net is total
// money collected minus money paid out.
func SummarizePeriod(start, end string, savings []domain.Saving, loans []domain.Loan, payments []domain.Payment, fines []domain.FinePayment, expenditures []domain.Expenditure) domain.PeriodSummary {
	sum := domain.PeriodSummary{
		Start:              start,
		End:                end,
		SavingsCollected:   decimal.Zero,
		LoansIssued:        decimal.Zero,
		PrincipalCollected: decimal.Zero,
		InterestCollected:  decimal.Zero,
		FinesCollected:     decimal.Zero,
		ExpendituresMade:   decimal.Zero,
	}
	for _, s := range FilterByPeriod(savings, func(s domain.Saving) string { return s.Date }, start, end) {
		sum.SavingsCollected = sum.SavingsCollected.Add(s.Amount)
	}
	for _, l := range FilterByPeriod(loans, func(l domain.Loan) string { return l.StartDate }, start, end) {
		sum.LoansIssued = sum.LoansIssued.Add(l.Principal)
	}
	for _, p := range FilterByPeriod(payments, func(p domain.Payment) string { return p.Date }, start, end) {
		sum.PrincipalCollected = sum.PrincipalCollected.Add(p.PrincipalPaid)
		sum.InterestCollected = sum.InterestCollected.Add(p.InterestPaid)
	}
	for _, f := range FilterByPeriod(fines, func(f domain.FinePayment) string { return f.Date }, start, end) {
		sum.FinesCollected = sum.FinesCollected.Add(f.Amount)
	}
	for _, e := range FilterByPeriod(expenditures, func(e domain.Expenditure) string { return e.Date }, start, end) {
		sum.ExpendituresMade = sum.ExpendituresMade.Add(e.Amount)
	}
	sum.Net = sum.SavingsCollected.
		Add(sum.PrincipalCollected).
		Add(sum.InterestCollected).
		Add(sum.FinesCollected).
		Sub(sum.LoansIssued).
		Sub(sum.ExpendituresMade)
	return sum
}
