package views

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"fintrack/internal/aggregate"
	"fintrack/internal/models"
)

// MonthlySheet is the monthly expense sheet: a payment-method breakdown
// followed by the month's expenses and their total. It renders equally
// to a terminal or into the body of a report email.
type MonthlySheet struct {
	Month time.Month
	Year  int
}

func (v MonthlySheet) Title() string {
	return fmt.Sprintf("Monthly Expense Sheet — %s %d", v.Month, v.Year)
}

func (v MonthlySheet) Render(w io.Writer, expenses []models.Expense) error {
	monthly := aggregate.FilterByPeriod(expenses, v.Month, v.Year)

	fmt.Fprintln(w, v.Title())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Payment Method Breakdown")
	for _, m := range models.PaymentMethods() {
		subset := aggregate.FilterByPaymentMethod(monthly, m)
		fmt.Fprintf(w, "  %-12s %s  (%d expenses)\n", m.Label(), Rupees(aggregate.Sum(subset)), len(subset))
	}
	fmt.Fprintln(w)

	if len(monthly) == 0 {
		fmt.Fprintf(w, "No expenses found for %s %d\n", v.Month, v.Year)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tCATEGORY\tPAYMENT METHOD\tAMOUNT")
	for _, e := range monthly {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			e.Date, e.Description, e.Kind().Label(), e.Method().Label(), Rupees(e.Amount))
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\n", Rupees(aggregate.Sum(monthly)))
	return tw.Flush()
}
