package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/utils/finance"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testLoan() domain.Loan {
	return domain.Loan{
		ID:           "loan-1",
		MemberID:     1,
		Principal:    d("50000"),
		InterestRate: d("20"),
		StartDate:    "2025-06-01",
		TermMonths:   6,
	}
}

func payment(loanID string, memberID int, date, principal, interest string) domain.Payment {
	return domain.Payment{
		ID:            "p-" + date,
		LoanID:        loanID,
		MemberID:      memberID,
		Date:          date,
		PrincipalPaid: d(principal),
		InterestPaid:  d(interest),
	}
}

func TestOutstandingPrincipal(t *testing.T) {
	loan := testLoan()
	payments := []domain.Payment{
		payment("loan-1", 1, "2025-07-01", "20000", "833.33"),
	}

	assert.True(t, d("30000").Equal(finance.OutstandingPrincipal(loan, payments)))
}

func TestOutstandingPrincipalIgnoresOtherLoans(t *testing.T) {
	loan := testLoan()
	payments := []domain.Payment{
		payment("loan-2", 2, "2025-07-01", "20000", "0"),
	}

	assert.True(t, d("50000").Equal(finance.OutstandingPrincipal(loan, payments)))
}

func TestOutstandingPrincipalFlooredAtZero(t *testing.T) {
	loan := testLoan()
	payments := []domain.Payment{
		payment("loan-1", 1, "2025-07-01", "60000", "0"),
	}

	assert.True(t, finance.OutstandingPrincipal(loan, payments).IsZero())
}

func TestOutstandingPrincipalIgnoresInterest(t *testing.T) {
	loan := testLoan()
	payments := []domain.Payment{
		payment("loan-1", 1, "2025-07-01", "0", "833.33"),
	}

	assert.True(t, d("50000").Equal(finance.OutstandingPrincipal(loan, payments)))
}

func TestMonthlyInterest(t *testing.T) {
	// 30000 * 20% / 12 = 500.00
	assert.True(t, d("500").Equal(finance.MonthlyInterest(d("30000"), d("20"))))
	// 50000 * 20% / 12 = 833.33 rounded to two places
	assert.True(t, d("833.33").Equal(finance.MonthlyInterest(d("50000"), d("20"))))
	assert.True(t, finance.MonthlyInterest(d("30000"), decimal.Zero).IsZero())
}

func TestLoanStatusDerivedFromPayments(t *testing.T) {
	loan := testLoan()

	assert.Equal(t, domain.LoanActive, finance.LoanStatus(loan, nil))

	full := []domain.Payment{payment("loan-1", 1, "2025-12-01", "50000", "0")}
	assert.Equal(t, domain.LoanClosed, finance.LoanStatus(loan, full))

	// Removing the payment re-opens the loan; status is never sticky.
	assert.Equal(t, domain.LoanActive, finance.LoanStatus(loan, nil))
}

func TestSummarize(t *testing.T) {
	loan := testLoan()
	payments := []domain.Payment{
		payment("loan-1", 1, "2025-07-01", "20000", "833.33"),
		payment("loan-1", 1, "2025-08-01", "10000", "500"),
		payment("loan-2", 2, "2025-08-01", "999", "99"),
	}

	summary := finance.Summarize(loan, payments)
	assert.True(t, d("20000").Equal(summary.OutstandingPrincipal))
	assert.True(t, d("30000").Equal(summary.TotalPrincipalPaid))
	assert.True(t, d("1333.33").Equal(summary.TotalInterestPaid))
	// 20000 * 20% / 12 = 333.33
	assert.True(t, d("333.33").Equal(summary.MonthlyInterestDue))
}

func TestMemberAggregate(t *testing.T) {
	savings := []domain.Saving{
		{ID: "s1", MemberID: 1, Amount: d("1000"), Date: "2025-07-01"},
		{ID: "s2", MemberID: 1, Amount: d("1000"), Date: "2025-08-01"},
		{ID: "s3", MemberID: 2, Amount: d("5000"), Date: "2025-08-01"},
	}
	loans := []domain.Loan{testLoan()}
	payments := []domain.Payment{
		payment("loan-1", 1, "2025-07-01", "20000", "833.33"),
	}
	fines := []domain.FinePayment{
		{ID: "f1", MemberID: 1, Amount: d("100"), Date: "2025-08-05", Reason: domain.FineSavingDefault},
	}

	agg := finance.MemberAggregate(1, savings, loans, payments, fines)
	assert.True(t, d("2000").Equal(agg.TotalSavings))
	assert.True(t, d("50000").Equal(agg.LoansIssued))
	assert.True(t, d("20000").Equal(agg.PrincipalPaid))
	assert.True(t, d("833.33").Equal(agg.InterestPaid))
	assert.True(t, d("100").Equal(agg.Fines))
	// savings + interest + fines - loans issued
	assert.True(t, d("-47066.67").Equal(agg.NetContribution))
}
