package models

import "github.com/shopspring/decimal"

// EMISummary aggregates the state of all EMI loans. The backend serves
// one at /api/emis/summary; the aggregator recomputes the identical
// shape locally from a fetched loan list.
type EMISummary struct {
	TotalActiveLoans  int             `json:"totalActiveLoans"`
	TotalOutstanding  decimal.Decimal `json:"totalOutstanding"`
	TotalPaidAmount   decimal.Decimal `json:"totalPaidAmount"`
	TotalMonthlyEMI   decimal.Decimal `json:"totalMonthlyEMI"`
	OverdueCount      int             `json:"overdueCount"`
	UpcomingThisMonth int             `json:"upcomingThisMonth"`
}

// StatusCounts is the number of lending records per status value.
type StatusCounts struct {
	Pending           int `json:"pending"`
	PartiallyReturned int `json:"partially_returned"`
	FullyReturned     int `json:"fully_returned"`
}

// LendingSummary aggregates all lending records.
type LendingSummary struct {
	TotalLent     decimal.Decimal `json:"totalLent"`
	TotalReturned decimal.Decimal `json:"totalReturned"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	StatusCounts  StatusCounts    `json:"statusCounts"`
	TotalRecords  int             `json:"totalRecords"`
}

// SavingsSummary aggregates all savings transactions.
type SavingsSummary struct {
	TotalDeposits    decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// MonthlySavings is one calendar-month bucket of savings activity.
// Month is a YYYY-MM label; chronological order equals lexical order.
type MonthlySavings struct {
	Month       string          `json:"month"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
	Net         decimal.Decimal `json:"net"`
}
