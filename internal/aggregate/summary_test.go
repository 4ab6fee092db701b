package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		due    models.Date
		isPaid bool
		want   bool
	}{
		{"past and unpaid", models.NewDate(2024, time.March, 10), false, true},
		{"past but paid", models.NewDate(2024, time.March, 10), true, false},
		{"due exactly now", models.DateOf(now), false, false},
		{"future", models.NewDate(2024, time.April, 1), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOverdue(tt.due, tt.isPaid, now); got != tt.want {
				t.Errorf("IsOverdue(%s, paid=%v) = %v, want %v", tt.due, tt.isPaid, got, tt.want)
			}
		})
	}
}

func TestEMISummary(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	emis := []models.EMI{
		{
			LoanName:      "bike",
			IsActive:      true,
			MonthlyAmount: decimal.NewFromInt(5000),
			Installments: []models.EMIInstallment{
				{InstallmentNumber: 1, DueDate: models.NewDate(2024, time.February, 5), Amount: decimal.NewFromInt(5000), IsPaid: true, PaidAmount: decimal.NewFromInt(5000)},
				{InstallmentNumber: 2, DueDate: models.NewDate(2024, time.March, 5), Amount: decimal.NewFromInt(5000)},
				{InstallmentNumber: 3, DueDate: models.NewDate(2024, time.March, 25), Amount: decimal.NewFromInt(5000)},
				{InstallmentNumber: 4, DueDate: models.NewDate(2024, time.April, 5), Amount: decimal.NewFromInt(5000)},
			},
		},
		{
			LoanName:      "closed loan",
			IsActive:      false,
			MonthlyAmount: decimal.NewFromInt(1000),
			Installments: []models.EMIInstallment{
				{InstallmentNumber: 1, DueDate: models.NewDate(2023, time.December, 5), Amount: decimal.NewFromInt(1000), IsPaid: true, PaidAmount: decimal.NewFromInt(1000)},
			},
		},
	}

	s := EMISummary(emis, now)
	if s.TotalActiveLoans != 1 {
		t.Errorf("TotalActiveLoans = %d, want 1", s.TotalActiveLoans)
	}
	if !s.TotalMonthlyEMI.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("TotalMonthlyEMI = %s, want 5000 (inactive loans excluded)", s.TotalMonthlyEMI)
	}
	if !s.TotalOutstanding.Equal(decimal.NewFromInt(15000)) {
		t.Errorf("TotalOutstanding = %s, want 15000", s.TotalOutstanding)
	}
	if !s.TotalPaidAmount.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("TotalPaidAmount = %s, want 6000", s.TotalPaidAmount)
	}
	if s.OverdueCount != 1 {
		t.Errorf("OverdueCount = %d, want 1 (only the March 5 installment)", s.OverdueCount)
	}
	if s.UpcomingThisMonth != 2 {
		t.Errorf("UpcomingThisMonth = %d, want 2 (both unpaid March installments)", s.UpcomingThisMonth)
	}
}

func TestLendingSummary(t *testing.T) {
	records := []models.LendingRecord{
		{Amount: decimal.NewFromInt(1000), ReturnedAmount: decimal.Zero},
		{Amount: decimal.NewFromInt(2000), ReturnedAmount: decimal.NewFromInt(500)},
		{Amount: decimal.NewFromInt(300), ReturnedAmount: decimal.NewFromInt(300)},
	}

	s := LendingSummary(records)
	if !s.TotalLent.Equal(decimal.NewFromInt(3300)) {
		t.Errorf("TotalLent = %s, want 3300", s.TotalLent)
	}
	if !s.TotalReturned.Equal(decimal.NewFromInt(800)) {
		t.Errorf("TotalReturned = %s, want 800", s.TotalReturned)
	}
	if !s.PendingAmount.Equal(s.TotalLent.Sub(s.TotalReturned)) {
		t.Errorf("PendingAmount = %s, want totalLent-totalReturned = %s", s.PendingAmount, s.TotalLent.Sub(s.TotalReturned))
	}
	if s.StatusCounts.Pending != 1 || s.StatusCounts.PartiallyReturned != 1 || s.StatusCounts.FullyReturned != 1 {
		t.Errorf("StatusCounts = %+v, want one of each", s.StatusCounts)
	}
	if s.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", s.TotalRecords)
	}
}

func TestSavingsSummary(t *testing.T) {
	txs := []models.SavingsTransaction{
		{Type: models.SavingsDeposit, Amount: decimal.NewFromInt(500)},
		{Type: models.SavingsWithdrawal, Amount: decimal.NewFromInt(200)},
	}

	s := SavingsSummary(txs)
	if !s.TotalDeposits.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalDeposits = %s, want 500", s.TotalDeposits)
	}
	if !s.TotalWithdrawals.Equal(decimal.NewFromInt(200)) {
		t.Errorf("TotalWithdrawals = %s, want 200", s.TotalWithdrawals)
	}
	if !s.Balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Balance = %s, want 300", s.Balance)
	}
	if s.TransactionCount != 2 {
		t.Errorf("TransactionCount = %d, want 2", s.TransactionCount)
	}

	empty := SavingsSummary(nil)
	if !empty.Balance.IsZero() || empty.TransactionCount != 0 {
		t.Errorf("empty summary = %+v, want zeros", empty)
	}
}
