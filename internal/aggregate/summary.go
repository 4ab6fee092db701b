package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// IsOverdue reports whether an unpaid installment's due date has passed.
// A due date equal to now is not overdue; the inequality is strict.
func IsOverdue(dueDate models.Date, isPaid bool, now time.Time) bool {
	return !isPaid && dueDate.Before(now)
}

// EMISummary recomputes the loan summary from a fetched loan list.
// Outstanding covers every unpaid installment of every loan; monthly
// EMI and the active-loan count cover active loans only.
func EMISummary(emis []models.EMI, now time.Time) models.EMISummary {
	s := models.EMISummary{
		TotalOutstanding: decimal.Zero,
		TotalPaidAmount:  decimal.Zero,
		TotalMonthlyEMI:  decimal.Zero,
	}
	for _, emi := range emis {
		if emi.IsActive {
			s.TotalActiveLoans++
			s.TotalMonthlyEMI = s.TotalMonthlyEMI.Add(emi.MonthlyAmount)
		}
		for _, in := range emi.Installments {
			if in.IsPaid {
				s.TotalPaidAmount = s.TotalPaidAmount.Add(in.PaidAmount)
				continue
			}
			s.TotalOutstanding = s.TotalOutstanding.Add(in.Amount)
			if IsOverdue(in.DueDate, false, now) {
				s.OverdueCount++
			}
			if in.DueDate.SameMonth(now.Year(), now.Month()) {
				s.UpcomingThisMonth++
			}
		}
	}
	return s
}

// LendingSummary recomputes the lending summary from a fetched record
// list. pendingAmount is always totalLent minus totalReturned; status
// counts are derived from the amounts, never read from stored labels.
func LendingSummary(records []models.LendingRecord) models.LendingSummary {
	s := models.LendingSummary{
		TotalLent:     decimal.Zero,
		TotalReturned: decimal.Zero,
		TotalRecords:  len(records),
	}
	for _, r := range records {
		s.TotalLent = s.TotalLent.Add(r.Amount)
		s.TotalReturned = s.TotalReturned.Add(r.ReturnedAmount)
		switch r.CurrentStatus() {
		case models.LendingPending:
			s.StatusCounts.Pending++
		case models.LendingPartiallyReturned:
			s.StatusCounts.PartiallyReturned++
		case models.LendingFullyReturned:
			s.StatusCounts.FullyReturned++
		}
	}
	s.PendingAmount = s.TotalLent.Sub(s.TotalReturned)
	return s
}

// SavingsSummary recomputes deposit/withdrawal totals and the running
// balance from a fetched transaction list.
func SavingsSummary(txs []models.SavingsTransaction) models.SavingsSummary {
	s := models.SavingsSummary{
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TransactionCount: len(txs),
	}
	for _, tx := range txs {
		if tx.Type == models.SavingsWithdrawal {
			s.TotalWithdrawals = s.TotalWithdrawals.Add(tx.Amount)
		} else {
			s.TotalDeposits = s.TotalDeposits.Add(tx.Amount)
		}
	}
	s.Balance = s.TotalDeposits.Sub(s.TotalWithdrawals)
	return s
}
