package finance

import (
	"fmt"

	"github.com/sahakari-app/sahakari_backend/internal/core/domain"
)

// ConsistencyIssue describes one referential problem between payments and
// loans. The store enforces none of this; issues are reported, never fixed
// automatically.
type ConsistencyIssue struct {
	PaymentID string `json:"paymentId"`
	LoanID    string `json:"loanId"`
	Problem   string `json:"problem"`
}

// CheckPayments verifies that every payment references an existing loan and
// that its denormalized memberId matches the loan's member.
func CheckPayments(loans []domain.Loan, payments []domain.Payment) []ConsistencyIssue {
	loanByID := make(map[string]domain.Loan, len(loans))
	for _, l := range loans {
		loanByID[l.ID] = l
	}

	issues := []ConsistencyIssue{}
	for _, p := range payments {
		loan, ok := loanByID[p.LoanID]
		if !ok {
			issues = append(issues, ConsistencyIssue{
				PaymentID: p.ID,
				LoanID:    p.LoanID,
				Problem:   "payment references a loan that does not exist",
			})
			continue
		}
		if loan.MemberID != p.MemberID {
			issues = append(issues, ConsistencyIssue{
				PaymentID: p.ID,
				LoanID:    p.LoanID,
				Problem: fmt.Sprintf("payment memberId %d does not match loan memberId %d",
					p.MemberID, loan.MemberID),
			})
		}
	}
	return issues
}
