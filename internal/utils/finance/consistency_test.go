package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
	"github.com/sahakari-app/sahakari_backend/internal/utils/finance"
)

func TestCheckPaymentsClean(t *testing.T) {
	loans := []domain.Loan{{ID: "l1", MemberID: 1, Principal: d("1000")}}
	payments := []domain.Payment{payment("l1", 1, "2025-07-01", "500", "0")}

	assert.Empty(t, finance.CheckPayments(loans, payments))
}

func TestCheckPaymentsFindsOrphansAndMismatches(t *testing.T) {
	loans := []domain.Loan{{ID: "l1", MemberID: 1, Principal: d("1000")}}
	payments := []domain.Payment{
		payment("l1", 2, "2025-07-01", "500", "0"), // wrong member
		payment("gone", 1, "2025-07-02", "500", "0"), // orphaned
	}

	issues := finance.CheckPayments(loans, payments)
	require.Len(t, issues, 2)
	assert.Equal(t, "l1", issues[0].LoanID)
	assert.Equal(t, "gone", issues[1].LoanID)
}
