package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/utils/finance"
)

func TestFilterByPeriodIsInclusive(t *testing.T) {
	savings := []domain.Saving{
		{ID: "before", Date: "2025-06-30"},
		{ID: "first", Date: "2025-07-01"},
		{ID: "mid", Date: "2025-07-15"},
		{ID: "last", Date: "2025-07-31"},
		{ID: "after", Date: "2025-08-01"},
	}

	got := finance.FilterByPeriod(savings, func(s domain.Saving) string { return s.Date }, "2025-07-01", "2025-07-31")
	ids := make([]string, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"first", "mid", "last"}, ids)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2025-07", finance.MonthOf("2025-07-15"))
	assert.Equal(t, "bad", finance.MonthOf("bad"))
}

func TestPreviousMonth(t *testing.T) {
	assert.Equal(t, "2025-12", finance.PreviousMonth("2026-01"))
	assert.Equal(t, "2025-06", finance.PreviousMonth("2025-07"))
	assert.Empty(t, finance.PreviousMonth("garbage"))
}

func TestMonthBounds(t *testing.T) {
	first, last := finance.MonthBounds("2025-02")
	assert.Equal(t, "2025-02-01", first)
	assert.Equal(t, "2025-02-28", last)

	first, last = finance.MonthBounds("2024-02")
	assert.Equal(t, "2024-02-01", first)
	assert.Equal(t, "2024-02-29", last)

	first, last = finance.MonthBounds("garbage")
	assert.Empty(t, first)
	assert.Empty(t, last)
}

func TestSummarizePeriod(t *testing.T) {
	savings := []domain.Saving{
		{ID: "s1", MemberID: 1, Amount: d("1000"), Date: "2025-07-05"},
		{ID: "s2", MemberID: 2, Amount: d("1000"), Date: "2025-08-05"}, // outside
	}
	loans := []domain.Loan{
		{ID: "l1", MemberID: 1, Principal: d("50000"), StartDate: "2025-07-10"},
	}
	payments := []domain.Payment{
		payment("l1", 1, "2025-07-20", "20000", "833.33"),
	}
	fines := []domain.FinePayment{
		{ID: "f1", MemberID: 2, Amount: d("100"), Date: "2025-07-31"},
	}
	expenditures := []domain.Expenditure{
		{ID: "e1", Item: "stationery", Amount: d("250"), Date: "2025-07-01"},
	}

	sum := finance.SummarizePeriod("2025-07-01", "2025-07-31", savings, loans, payments, fines, expenditures)
	assert.True(t, d("1000").Equal(sum.SavingsCollected))
	assert.True(t, d("50000").Equal(sum.LoansIssued))
	assert.True(t, d("20000").Equal(sum.PrincipalCollected))
	assert.True(t, d("833.33").Equal(sum.InterestCollected))
	assert.True(t, d("100").Equal(sum.FinesCollected))
	assert.True(t, d("250").Equal(sum.ExpendituresMade))
	// collected - loans issued - expenditures
	assert.True(t, d("-28316.67").Equal(sum.Net))
}
