// Package aggregate is the financial record aggregator: pure, stateless
// functions that filter, bucket and sum flat collections of dated
// financial records after a view has fetched them. It performs no I/O
// and holds no state; time-dependent operations take now explicitly.
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// MonthAll is the month sentinel: match by year only.
const MonthAll time.Month = 0

// CategoryAll is the category sentinel: match every record.
const CategoryAll models.Category = "all"

// Dated is any record carrying a calendar date.
type Dated interface {
	When() models.Date
}

// Valued is any record carrying a monetary amount.
type Valued interface {
	Value() decimal.Decimal
}

// FilterByCategory keeps the expenses whose category equals c, or all of
// them when c is CategoryAll. An absent category counts as "other".
func FilterByCategory(expenses []models.Expense, c models.Category) []models.Expense {
	if c == CategoryAll {
		return expenses
	}
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Kind() == c {
			out = append(out, e)
		}
	}
	return out
}

// FilterByPeriod keeps the records dated in the given calendar month of
// the given year. With MonthAll it matches by year only. Month and year
// come straight off the record's date, with no timezone conversion.
func FilterByPeriod[T Dated](records []T, month time.Month, year int) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		d := r.When()
		if d.Year() != year {
			continue
		}
		if month != MonthAll && d.Month() != month {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByPaymentMethod keeps the expenses paid via m. Records without a
// payment method count as paid by oneself.
func FilterByPaymentMethod(expenses []models.Expense, m models.PaymentMethod) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Method() == m {
			out = append(out, e)
		}
	}
	return out
}

// FilterByStatus keeps the lending records whose recomputed status is s.
func FilterByStatus(records []models.LendingRecord, s models.LendingStatus) []models.LendingRecord {
	out := make([]models.LendingRecord, 0, len(records))
	for _, r := range records {
		if r.CurrentStatus() == s {
			out = append(out, r)
		}
	}
	return out
}

// FilterByType keeps the savings transactions of the given type.
func FilterByType(txs []models.SavingsTransaction, t models.SavingsType) []models.SavingsTransaction {
	out := make([]models.SavingsTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}
