package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// Sum adds up the amounts of a record sequence; zero for an empty one.
// Accumulation stays in decimal form end to end, so cent-level drift
// cannot creep in before the formatting boundary.
func Sum[T Valued](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Value())
	}
	return total
}

// GroupByCategory sums expense amounts per category. Every one of the
// six fixed categories is present in the result, zero when unmatched.
func GroupByCategory(expenses []models.Expense) map[models.Category]decimal.Decimal {
	groups := make(map[models.Category]decimal.Decimal, 6)
	for _, c := range models.Categories() {
		groups[c] = decimal.Zero
	}
	for _, e := range expenses {
		groups[e.Kind()] = groups[e.Kind()].Add(e.Amount)
	}
	return groups
}

// GroupByMonth buckets savings transactions per calendar month, ordered
// chronologically ascending. Only months present in the data appear.
func GroupByMonth(txs []models.SavingsTransaction) []models.MonthlySavings {
	buckets := make(map[string]*models.MonthlySavings)
	for _, tx := range txs {
		label := tx.Date.Format("2006-01")
		b, ok := buckets[label]
		if !ok {
			b = &models.MonthlySavings{
				Month:       label,
				Deposits:    decimal.Zero,
				Withdrawals: decimal.Zero,
			}
			buckets[label] = b
		}
		if tx.Type == models.SavingsWithdrawal {
			b.Withdrawals = b.Withdrawals.Add(tx.Amount)
		} else {
			b.Deposits = b.Deposits.Add(tx.Amount)
		}
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]models.MonthlySavings, 0, len(labels))
	for _, label := range labels {
		b := buckets[label]
		b.Net = b.Deposits.Sub(b.Withdrawals)
		out = append(out, *b)
	}
	return out
}
