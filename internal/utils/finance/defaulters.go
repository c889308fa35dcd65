package finance

import "github.com/sahakari-app/sahakari_backend/internal/core/domain"

// SavingDefaulters lists active members who saved in the calendar month
// before month but not in month itself. A member with no deposit either
// month is not a defaulter; the obligation follows from having saved last
// month.
func SavingDefaulters(month string, members []domain.Member, savings []domain.Saving) []domain.Member {
	prev := PreviousMonth(month)
	savedIn := func(memberID int, m string) bool {
		for _, s := range savings {
			if s.MemberID == memberID && MonthOf(s.Date) == m {
				return true
			}
		}
		return false
	}

	defaulters := []domain.Member{}
	for _, member := range members {
		if !member.IsActive {
			continue
		}
		if savedIn(member.ID, prev) && !savedIn(member.ID, month) {
			defaulters = append(defaulters, member)
		}
	}
	return defaulters
}

// InterestDefaulters lists active members holding a loan with outstanding
// principal who paid no interest during month.
func InterestDefaulters(month string, members []domain.Member, loans []domain.Loan, payments []domain.Payment) []domain.Member {
	paidInterestIn := func(memberID int) bool {
		for _, p := range payments {
			if p.MemberID == memberID && MonthOf(p.Date) == month && p.InterestPaid.IsPositive() {
				return true
			}
		}
		return false
	}
	hasActiveLoan := func(memberID int) bool {
		for _, l := range loans {
			if l.MemberID == memberID && OutstandingPrincipal(l, payments).IsPositive() {
				return true
			}
		}
		return false
	}

	defaulters := []domain.Member{}
	for _, member := range members {
		if !member.IsActive {
			continue
		}
		if hasActiveLoan(member.ID) && !paidInterestIn(member.ID) {
			defaulters = append(defaulters, member)
		}
	}
	return defaulters
}
